// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// SourceConfig registers one directory tree of coding-standard documents.
// Per prd001-sources R1.1-R1.4.
type SourceConfig struct {
	// Name identifies the source registration; it prefixes every record ID.
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Root is the directory scanned for candidate files.
	Root string `json:"root" yaml:"root" mapstructure:"root"`

	// Include lists doublestar glob patterns matched against slash-separated
	// relative paths. Empty means the default document patterns.
	Include []string `json:"include,omitempty" yaml:"include,omitempty" mapstructure:"include"`

	// Exclude lists glob patterns removed from the include set. Conventional
	// build and dependency directories are always excluded.
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty" mapstructure:"exclude"`

	// Language is the source-wide default language for practices that do not
	// declare one (e.g. "typescript"). Empty falls back to "general".
	Language string `json:"language,omitempty" yaml:"language,omitempty" mapstructure:"language"`

	// Framework is the source-wide default framework label.
	Framework string `json:"framework,omitempty" yaml:"framework,omitempty" mapstructure:"framework"`
}

// PracticeBaseConfig holds settings for the practice base.
// Per prd004-practice-base R1.1, R3.4.
type PracticeBaseConfig struct {
	// IndexDir is the directory holding the SQLite database and exports.
	IndexDir string `json:"index_dir" yaml:"index_dir" mapstructure:"index_dir"`

	// MaxResults is the default maximum number of query results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`

	// MinScore is the minimum relevance score for full-text matches.
	// Zero keeps every match.
	MinScore float64 `json:"min_score" yaml:"min_score" mapstructure:"min_score"`
}

// IngestConfig holds settings for the ingestion pipeline.
// Per prd005-ingestion R2.1.
type IngestConfig struct {
	// Workers bounds concurrent per-file extraction (default 4). Files are
	// independent; order within each file is always preserved.
	Workers int `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// EngineConfig groups all configuration for the engine.
type EngineConfig struct {
	Sources      []SourceConfig     `json:"sources" yaml:"sources" mapstructure:"sources"`
	PracticeBase PracticeBaseConfig `json:"practice_base" yaml:"practice_base" mapstructure:"practice_base"`
	Ingest       IngestConfig       `json:"ingest" yaml:"ingest" mapstructure:"ingest"`
}
