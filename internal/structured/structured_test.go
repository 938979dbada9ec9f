// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package structured

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/standards-engine/pkg/types"
)

func TestParseFileYAML(t *testing.T) {
	src := types.SourceConfig{Name: "team", Language: "javascript"}
	data := []byte(`title: API Rules
language: typescript
tags: [api]
practices:
  - title: Validate Input
    category: security
    severity: error
    description: Check every request body.
    good_example: "schema.parse(body)"
    lint_rules: [no-unchecked-input]
  - title: Paginate Lists
    description: Cap page size at 100.
`)

	records, warnings, err := ParseFile(src, "rules/api.yaml", data)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, records, 3)

	p := records[0]
	assert.Equal(t, "team:rules/api.yaml#validate-input", p.ID)
	assert.Equal(t, types.KindPractice, p.Kind)
	assert.Equal(t, types.CategorySecurity, p.Meta.Category)
	assert.Equal(t, types.SeverityError, p.Meta.Severity)
	assert.Equal(t, "typescript", p.Meta.Language, "file-level language fills the entry")
	assert.True(t, p.Meta.HasGoodExample)
	assert.False(t, p.Meta.HasBadExample)
	assert.Equal(t, []string{"no-unchecked-input"}, p.Meta.LintRules)
	assert.Equal(t, []string{"api"}, p.Meta.Tags)

	second := records[1]
	assert.Equal(t, "paginate-lists", second.Meta.PracticeID)
	assert.Equal(t, types.CategoryGeneral, second.Meta.Category, "missing category defaults")
	assert.Equal(t, types.SeveritySuggestion, second.Meta.Severity, "missing severity defaults")

	o := records[2]
	assert.Equal(t, types.KindOverview, o.Kind)
	assert.Equal(t, "API Rules", o.Title)
	assert.Equal(t, 2, o.Meta.PracticeCount)
	assert.Equal(t, []string{"security", "general"}, o.Meta.Categories)
	assert.Equal(t, string(data), o.Content, "overview carries the raw file")
}

func TestParseFileJSON(t *testing.T) {
	src := types.SourceConfig{Name: "team"}
	data := []byte(`{
  "practices": [
    {"id": "no-eval", "title": "No eval", "severity": "error"}
  ]
}`)

	records, warnings, err := ParseFile(src, "rules/core.json", data)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, records, 2)

	assert.Equal(t, "team:rules/core.json#no-eval", records[0].ID)
	assert.Equal(t, types.DefaultLanguage, records[0].Meta.Language)
	assert.Equal(t, "core.json", records[1].Title, "overview falls back to the filename")
}

func TestParseFileInvalidEntriesSkipped(t *testing.T) {
	src := types.SourceConfig{Name: "team"}
	data := []byte(`practices:
  - description: missing a title
  - title: Bad Category
    category: vibes
  - title: Valid One
`)

	records, warnings, err := ParseFile(src, "rules.yaml", data)
	require.NoError(t, err)
	assert.Len(t, warnings, 2, "two entries fail validation")
	require.Len(t, records, 2, "surviving practice plus the overview")
	assert.Equal(t, "valid-one", records[0].Meta.PracticeID)
	assert.Equal(t, 1, records[1].Meta.PracticeCount)
}

func TestParseFileEntryOverridesFileDefaults(t *testing.T) {
	src := types.SourceConfig{Name: "team", Framework: "express"}
	data := []byte(`severity: warning
language: javascript
practices:
  - title: Entry Wins
    severity: error
    language: typescript
    framework: fastify
`)

	records, _, err := ParseFile(src, "rules.yaml", data)
	require.NoError(t, err)
	require.Len(t, records, 2)

	p := records[0].Meta
	assert.Equal(t, types.SeverityError, p.Severity)
	assert.Equal(t, "typescript", p.Language)
	assert.Equal(t, "fastify", p.Framework)
}

func TestParseFileDuplicateIDsSuffixed(t *testing.T) {
	src := types.SourceConfig{Name: "team"}
	data := []byte(`practices:
  - title: Same Name
  - title: Same Name
`)

	records, _, err := ParseFile(src, "rules.yaml", data)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "same-name", records[0].Meta.PracticeID)
	assert.Equal(t, "same-name-2", records[1].Meta.PracticeID)
}

func TestParseFileUnrecognizedShape(t *testing.T) {
	src := types.SourceConfig{Name: "team"}

	tests := []struct {
		name string
		path string
		data string
	}{
		{name: "no practices key", path: "config.yaml", data: "title: Not a rule list\nvalue: 3\n"},
		{name: "empty practices", path: "empty.yaml", data: "practices: []\n"},
		{name: "invalid yaml", path: "broken.yaml", data: ": [\n"},
		{name: "invalid json", path: "broken.json", data: "{nope"},
		{name: "scalar document", path: "scalar.yaml", data: "just a string\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseFile(src, tt.path, []byte(tt.data))
			assert.ErrorIs(t, err, ErrUnrecognizedShape)
		})
	}
}
