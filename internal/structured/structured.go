// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package structured handles the schema-driven ingestion path: YAML and JSON
// rule lists with explicit fields. Unlike the markdown extractor this path is
// validation, not inference — entries either conform or are skipped.
// Implements: prd003-structured (R1-R3).
package structured

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/standards-engine/internal/extract"
	"github.com/pdiddy/standards-engine/pkg/types"
)

// ErrUnrecognizedShape marks a structured file that does not look like a rule
// list at all. Callers log a warning and skip the file; the batch continues (R3.2).
var ErrUnrecognizedShape = errors.New("unrecognized rule file shape")

// ruleFile is the on-disk shape of a structured rule list.
type ruleFile struct {
	Title     string      `json:"title" yaml:"title"`
	Category  string      `json:"category" yaml:"category"`
	Severity  string      `json:"severity" yaml:"severity"`
	Language  string      `json:"language" yaml:"language"`
	Framework string      `json:"framework" yaml:"framework"`
	Tags      []string    `json:"tags" yaml:"tags"`
	Practices []ruleEntry `json:"practices" yaml:"practices"`
}

// ruleEntry is one declared practice in a rule list.
type ruleEntry struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Severity    string   `json:"severity" yaml:"severity"`
	Language    string   `json:"language" yaml:"language"`
	Framework   string   `json:"framework" yaml:"framework"`
	GoodExample string   `json:"good_example" yaml:"good_example"`
	BadExample  string   `json:"bad_example" yaml:"bad_example"`
	Rationale   string   `json:"rationale" yaml:"rationale"`
	LintRules   []string `json:"lint_rules" yaml:"lint_rules"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Validate checks one entry against the rule list schema: a title is
// required, and classification fields must be members of their closed sets
// when present.
func (e ruleEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Category, validation.In(categoryValues()...)),
		validation.Field(&e.Severity, validation.In(severityValues()...)),
	)
}

func categoryValues() []any {
	out := make([]any, len(types.Categories))
	for i, c := range types.Categories {
		out[i] = string(c)
	}
	return out
}

func severityValues() []any {
	out := make([]any, len(types.Severities))
	for i, s := range types.Severities {
		out[i] = string(s)
	}
	return out
}

// ParseFile converts one structured rule file into records. Entries that fail
// validation are skipped and reported as warnings; a file with no practices
// list returns ErrUnrecognizedShape (R1.1, R2.1, R3.1-R3.2).
func ParseFile(src types.SourceConfig, relPath string, data []byte) ([]types.Record, []string, error) {
	var rf ruleFile
	if err := unmarshalByExt(relPath, data, &rf); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnrecognizedShape, err)
	}
	if len(rf.Practices) == 0 {
		return nil, nil, ErrUnrecognizedShape
	}

	var (
		records   []types.Record
		practices []types.Practice
		warnings  []string
		slugs     = newSlugSet()
	)

	for i, entry := range rf.Practices {
		if err := entry.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("practice %d: %v", i+1, err))
			continue
		}
		p := normalize(entry, rf, src, slugs)
		practices = append(practices, p)
		records = append(records, recordFromPractice(src, relPath, p))
	}

	records = append(records, overviewRecord(src, relPath, rf, string(data), practices))
	return records, warnings, nil
}

// unmarshalByExt decodes JSON for .json files and YAML otherwise.
func unmarshalByExt(relPath string, data []byte, v any) error {
	if strings.EqualFold(path.Ext(relPath), ".json") {
		return json.Unmarshal(data, v)
	}
	return yaml.Unmarshal(data, v)
}

// normalize fills an entry's missing fields from the file-level declarations,
// the source registration defaults, and finally the hard defaults — the same
// cascade the markdown assembler applies (R2.2).
func normalize(e ruleEntry, rf ruleFile, src types.SourceConfig, slugs *slugSet) types.Practice {
	p := types.Practice{
		Title:       strings.TrimSpace(e.Title),
		Description: strings.TrimSpace(e.Description),
		Category:    types.Category(firstNonEmpty(e.Category, rf.Category)),
		Severity:    types.Severity(firstNonEmpty(e.Severity, rf.Severity)),
		Language:    firstNonEmpty(e.Language, rf.Language, src.Language, types.DefaultLanguage),
		Framework:   firstNonEmpty(e.Framework, rf.Framework, src.Framework),
		GoodExample: e.GoodExample,
		BadExample:  e.BadExample,
		Rationale:   strings.TrimSpace(e.Rationale),
		LintRules:   dedupe(e.LintRules),
	}

	if p.Category == "" {
		p.Category = types.CategoryGeneral
	}
	if p.Severity == "" {
		p.Severity = types.SeveritySuggestion
	}

	for _, tag := range append(append([]string{}, rf.Tags...), e.Tags...) {
		p.Tags = appendTag(p.Tags, tag)
	}

	id := strings.TrimSpace(e.ID)
	if id == "" {
		id = p.Title
	}
	p.ID = slugs.claim(id)

	return p
}

func recordFromPractice(src types.SourceConfig, relPath string, p types.Practice) types.Record {
	return types.Record{
		ID:      types.PracticeRecordID(src.Name, relPath, p.ID),
		Kind:    types.KindPractice,
		Title:   p.Title,
		Content: extract.FormatPractice(p),
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

func overviewRecord(src types.SourceConfig, relPath string, rf ruleFile, raw string, practices []types.Practice) types.Record {
	title := strings.TrimSpace(rf.Title)
	if title == "" {
		title = path.Base(relPath)
	}

	seen := make(map[string]bool)
	var categories []string
	for _, p := range practices {
		if c := string(p.Category); !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}

	return types.Record{
		ID:      types.OverviewRecordID(src.Name, relPath),
		Kind:    types.KindOverview,
		Title:   title,
		Content: raw,
		Meta: types.RecordMeta{
			Source:        src.Name,
			Path:          relPath,
			Language:      firstNonEmpty(rf.Language, src.Language, types.DefaultLanguage),
			Framework:     firstNonEmpty(rf.Framework, src.Framework),
			Tags:          lowerAll(rf.Tags),
			PracticeCount: len(practices),
			Categories:    categories,
		},
	}
}

// slugSet hands out file-unique practice ids, suffixing duplicates.
type slugSet struct {
	seen map[string]int
}

func newSlugSet() *slugSet {
	return &slugSet{seen: make(map[string]int)}
}

func (s *slugSet) claim(raw string) string {
	base := extract.Slugify(raw)
	s.seen[base]++
	if n := s.seen[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func dedupe(values []string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

func appendTag(tags []string, tag string) []string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return tags
	}
	for _, t := range tags {
		if t == tag {
			return tags
		}
	}
	return append(tags, tag)
}

func lowerAll(values []string) []string {
	var out []string
	for _, v := range values {
		out = appendTag(out, v)
	}
	return out
}
