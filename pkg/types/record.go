// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RecordKind distinguishes practice records from per-file overview records.
type RecordKind string

const (
	KindPractice RecordKind = "practice"
	KindOverview RecordKind = "overview"
)

// RecordMeta is the metadata mapping attached to every record, consumed
// downstream for filtered retrieval. Per prd004-practice-base R2.2.
type RecordMeta struct {
	// Source is the source registration name.
	Source string `json:"source" yaml:"source"`

	// Path is the file path relative to the source root, slash-separated.
	Path string `json:"path" yaml:"path"`

	// PracticeID is the slug of the practice within its file. Empty for
	// overview records.
	PracticeID string `json:"practice_id,omitempty" yaml:"practice_id,omitempty"`

	Category  Category `json:"category,omitempty" yaml:"category,omitempty"`
	Severity  Severity `json:"severity,omitempty" yaml:"severity,omitempty"`
	Language  string   `json:"language,omitempty" yaml:"language,omitempty"`
	Framework string   `json:"framework,omitempty" yaml:"framework,omitempty"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	HasGoodExample bool `json:"has_good_example" yaml:"has_good_example"`
	HasBadExample  bool `json:"has_bad_example" yaml:"has_bad_example"`

	LintRules []string `json:"lint_rules,omitempty" yaml:"lint_rules,omitempty"`

	// PracticeCount and Categories summarize a file; set on overview records only.
	PracticeCount int      `json:"practice_count,omitempty" yaml:"practice_count,omitempty"`
	Categories    []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// Record is one indexable unit produced by extraction: either a single
// practice or a whole-file overview. Per prd004-practice-base R2.1.
type Record struct {
	// ID is the globally addressable identifier:
	// "<source>:<path>#<slug>" for practices, "<source>:<path>" for overviews.
	ID string `json:"id" yaml:"id"`

	Kind RecordKind `json:"kind" yaml:"kind"`

	// Title is the practice heading or the file-level title.
	Title string `json:"title" yaml:"title"`

	// Content is the canonical display/search document for the record.
	Content string `json:"content" yaml:"content"`

	Meta RecordMeta `json:"meta" yaml:"meta"`
}

// PracticeRecordID builds the global identifier for a practice record.
func PracticeRecordID(source, path, slug string) string {
	return source + ":" + path + "#" + slug
}

// OverviewRecordID builds the global identifier for a file overview record.
func OverviewRecordID(source, path string) string {
	return source + ":" + path
}
