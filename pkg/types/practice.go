// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Category is the fixed topical classification of a practice.
// Per prd002-extraction R3.1.
type Category string

const (
	CategoryNaming        Category = "naming"
	CategoryFormatting    Category = "formatting"
	CategoryArchitecture  Category = "architecture"
	CategoryTesting       Category = "testing"
	CategorySecurity      Category = "security"
	CategoryPerformance   Category = "performance"
	CategoryDocumentation Category = "documentation"
	CategoryErrorHandling Category = "error-handling"
	CategoryLogging       Category = "logging"
	CategoryDependencies  Category = "dependency-management"
	CategoryGeneral       Category = "general"
)

// Categories lists every valid Category value.
var Categories = []Category{
	CategoryNaming,
	CategoryFormatting,
	CategoryArchitecture,
	CategoryTesting,
	CategorySecurity,
	CategoryPerformance,
	CategoryDocumentation,
	CategoryErrorHandling,
	CategoryLogging,
	CategoryDependencies,
	CategoryGeneral,
}

// ValidCategory reports whether c is a member of the closed category set.
func ValidCategory(c Category) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Severity is the enforcement strength of a practice.
// Per prd002-extraction R4.1.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
	SeverityInfo       Severity = "info"
)

// Severities lists every valid Severity value.
var Severities = []Severity{SeverityError, SeverityWarning, SeveritySuggestion, SeverityInfo}

// ValidSeverity reports whether s is a member of the closed severity set.
func ValidSeverity(s Severity) bool {
	for _, v := range Severities {
		if s == v {
			return true
		}
	}
	return false
}

// DefaultLanguage marks a practice that applies regardless of language.
const DefaultLanguage = "general"

// Practice is one atomic, classified coding-standard recommendation with
// optional example code. Per prd002-extraction R1.1-R1.3.
type Practice struct {
	// ID is a slug derived from the heading text, unique within its source
	// file. Global identity is source name + file path + "#" + ID.
	ID string `json:"id" yaml:"id"`

	// Title is the verbatim heading text, trimmed.
	Title string `json:"title" yaml:"title"`

	// Description is the first qualifying paragraph of the section body, or a
	// truncated prefix of the section when no paragraph qualifies.
	Description string `json:"description" yaml:"description"`

	// Category is exactly one value from the closed category set.
	Category Category `json:"category" yaml:"category"`

	// Severity is the enforcement strength; defaults to suggestion.
	Severity Severity `json:"severity" yaml:"severity"`

	// Language is a free-text label; "general" means any language.
	Language string `json:"language" yaml:"language"`

	// Framework is an optional free-text label.
	Framework string `json:"framework,omitempty" yaml:"framework,omitempty"`

	// GoodExample is the recommended code sample, when one was found.
	GoodExample string `json:"good_example,omitempty" yaml:"good_example,omitempty"`

	// BadExample is the anti-pattern code sample, when one was found.
	BadExample string `json:"bad_example,omitempty" yaml:"bad_example,omitempty"`

	// Rationale is optional free text from a "Rationale" subsection.
	Rationale string `json:"rationale,omitempty" yaml:"rationale,omitempty"`

	// LintRules lists associated lint rule identifiers, de-duplicated in
	// first-occurrence order.
	LintRules []string `json:"lint_rules,omitempty" yaml:"lint_rules,omitempty"`

	// Tags are lowercase labels, de-duplicated.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
