// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/standards-engine/pkg/types"
)

// categoryRule pairs a category with its trigger keywords.
type categoryRule struct {
	category types.Category
	keywords []string
}

// categoryRules is an ordered table: rules are tested top to bottom and the
// first rule with any matching keyword wins. The order is business logic, not
// incidental — reordering changes classification on ambiguous sections (R3.2).
var categoryRules = []categoryRule{
	{types.CategoryNaming, []string{"naming", "convention"}},
	{types.CategoryFormatting, []string{"format", "indent", "spacing"}},
	{types.CategoryArchitecture, []string{"architect", "pattern", "structure"}},
	{types.CategoryTesting, []string{"test", "spec", "mock"}},
	{types.CategorySecurity, []string{"security", "vulnerab", "auth"}},
	{types.CategoryPerformance, []string{"performance", "optimize", "memory"}},
	{types.CategoryDocumentation, []string{"document", "comment", "readme"}},
	{types.CategoryErrorHandling, []string{"error", "exception", "throw"}},
	{types.CategoryLogging, []string{"log", "trace", "debug"}},
	{types.CategoryDependencies, []string{"depend", "package", "import"}},
}

// InferCategory classifies one section. A document-wide category from front
// matter wins; otherwise the keyword table is scanned over the heading and
// body, case-insensitive; otherwise general (R3.1-R3.3).
func InferCategory(heading, body string, docCategory types.Category) types.Category {
	if docCategory != "" {
		return docCategory
	}

	text := strings.ToLower(heading + " " + body)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.category
			}
		}
	}

	return types.CategoryGeneral
}

// severityTier pairs a severity with its modal-verb markers.
type severityTier struct {
	severity types.Severity
	markers  []string
}

// severityTiers is an ordered table: tiers are tested top to bottom, so a
// section containing both "must" and "should" resolves to error (R4.2).
var severityTiers = []severityTier{
	{types.SeverityError, []string{"must", "required", "always"}},
	{types.SeverityWarning, []string{"should", "recommended"}},
	{types.SeveritySuggestion, []string{"could", "consider", "may"}},
}

// InferSeverity classifies one section's enforcement strength. A
// document-wide severity from front matter wins; otherwise the modal-verb
// tiers are scanned over the section body only, not the heading; otherwise
// suggestion (R4.1-R4.3).
func InferSeverity(body string, docSeverity types.Severity) types.Severity {
	if docSeverity != "" {
		return docSeverity
	}

	text := strings.ToLower(body)
	for _, tier := range severityTiers {
		for _, m := range tier.markers {
			if strings.Contains(text, m) {
				return tier.severity
			}
		}
	}

	return types.SeveritySuggestion
}
