// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract converts free-form markdown coding-standard documents into
// normalized practice records. The extractor is a deterministic chain of
// layered heuristics — front-matter split, section segmentation, per-section
// field inference, assembly, formatting — that degrades to safe defaults on
// malformed input instead of failing.
// Implements: prd002-extraction (R1-R7);
//
//	docs/ARCHITECTURE § Extraction.
package extract

import (
	"github.com/pdiddy/standards-engine/pkg/types"
)

// ExtractDocument converts one markdown document into an ordered batch of
// practice records followed by the file's overview record. Heading order in
// the source is preserved; a document with no second-level headings yields
// the overview alone. Never fails: every heuristic produces a best-effort
// value or a safe default (R1.1, R2.1, R7.1).
func ExtractDocument(src types.SourceConfig, relPath, content string) []types.Record {
	meta, body := SplitFrontMatter(content)
	defaults := DefaultsFromFrontMatter(meta, src)

	sections := SplitSections(body)
	slugs := newSlugger()

	var (
		records   []types.Record
		practices []types.Practice
	)

	for _, sec := range sections {
		p := buildPractice(sec, defaults, slugs)
		practices = append(practices, p)
		records = append(records, practiceRecord(src, relPath, p))
	}

	records = append(records, BuildOverview(src, relPath, body, defaults, practices))
	return records
}

// buildPractice runs every field heuristic over one section and merges the
// results with the document defaults (R7.1, R7.2).
func buildPractice(sec Section, defaults Defaults, slugs *slugger) types.Practice {
	good, bad := ExtractExamples(sec.Body)

	return types.Practice{
		ID:          slugs.slug(sec.Heading),
		Title:       sec.Heading,
		Description: ExtractDescription(sec.Body),
		Category:    InferCategory(sec.Heading, sec.Body, defaults.Category),
		Severity:    InferSeverity(sec.Body, defaults.Severity),
		Language:    defaults.Language,
		Framework:   defaults.Framework,
		GoodExample: good,
		BadExample:  bad,
		Rationale:   ExtractRationale(sec.Body),
		LintRules:   ExtractLintRules(sec.Body),
		Tags:        ExtractTags(sec.Body, defaults.Tags),
	}
}

// practiceRecord wraps an assembled practice in its indexable record form,
// carrying the metadata mapping consumed by the practice base (R7.4).
func practiceRecord(src types.SourceConfig, relPath string, p types.Practice) types.Record {
	return types.Record{
		ID:      types.PracticeRecordID(src.Name, relPath, p.ID),
		Kind:    types.KindPractice,
		Title:   p.Title,
		Content: FormatPractice(p),
		Meta: types.RecordMeta{
			Source:         src.Name,
			Path:           relPath,
			PracticeID:     p.ID,
			Category:       p.Category,
			Severity:       p.Severity,
			Language:       p.Language,
			Framework:      p.Framework,
			Tags:           p.Tags,
			HasGoodExample: p.GoodExample != "",
			HasBadExample:  p.BadExample != "",
			LintRules:      p.LintRules,
		},
	}
}
