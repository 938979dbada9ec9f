// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"path"
	"strings"

	"github.com/pdiddy/standards-engine/pkg/types"
)

// FormatPractice re-serializes a practice into the canonical text block used
// as its indexable and display content (R7.4). Optional parts are omitted,
// never rendered empty.
func FormatPractice(p types.Practice) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n", p.Title)
	if p.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", p.Description)
	}
	if p.Rationale != "" {
		fmt.Fprintf(&b, "\n## Rationale\n\n%s\n", p.Rationale)
	}
	if p.GoodExample != "" {
		fmt.Fprintf(&b, "\n## Good Example\n\n```\n%s\n```\n", p.GoodExample)
	}
	if p.BadExample != "" {
		fmt.Fprintf(&b, "\n## Bad Example\n\n```\n%s\n```\n", p.BadExample)
	}
	if len(p.LintRules) > 0 {
		b.WriteString("\n## Lint Rules\n\n")
		for _, rule := range p.LintRules {
			fmt.Fprintf(&b, "- %s\n", rule)
		}
	}

	return b.String()
}

// BuildOverview produces the one per-file summary record that supports
// whole-file queries distinct from single-practice lookups (R7.5). The title
// falls back to the filename when front matter declares none; the content is
// the full body after front matter removal.
func BuildOverview(src types.SourceConfig, relPath, body string, defaults Defaults, practices []types.Practice) types.Record {
	title := defaults.Title
	if title == "" {
		title = path.Base(relPath)
	}

	seen := make(map[string]bool)
	var categories []string
	for _, p := range practices {
		c := string(p.Category)
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}

	return types.Record{
		ID:      types.OverviewRecordID(src.Name, relPath),
		Kind:    types.KindOverview,
		Title:   title,
		Content: body,
		Meta: types.RecordMeta{
			Source:        src.Name,
			Path:          relPath,
			Language:      defaults.Language,
			Framework:     defaults.Framework,
			Tags:          defaults.Tags,
			PracticeCount: len(practices),
			Categories:    categories,
		},
	}
}
