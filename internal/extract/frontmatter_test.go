// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"reflect"
	"testing"

	"github.com/pdiddy/standards-engine/pkg/types"
)

func TestSplitFrontMatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantMeta map[string]any
		wantBody string
	}{
		{
			name:     "yaml front matter",
			content:  "---\ntitle: Style Guide\nlanguage: go\n---\n\n## Rule\n",
			wantMeta: map[string]any{"title": "Style Guide", "language": "go"},
			wantBody: "\n## Rule\n",
		},
		{
			name:     "no front matter",
			content:  "## Rule\n\nBody.\n",
			wantMeta: map[string]any{},
			wantBody: "## Rule\n\nBody.\n",
		},
		{
			name:     "malformed front matter recovered as body",
			content:  "---\n: not yaml [\n---\nBody.\n",
			wantMeta: map[string]any{},
			wantBody: "---\n: not yaml [\n---\nBody.\n",
		},
		{
			name:     "empty document",
			content:  "",
			wantMeta: map[string]any{},
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta, body := SplitFrontMatter(tt.content)
			if !reflect.DeepEqual(meta, tt.wantMeta) {
				t.Errorf("meta = %v, want %v", meta, tt.wantMeta)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestDefaultsFromFrontMatter(t *testing.T) {
	src := types.SourceConfig{
		Name:     "team-standards",
		Language: "javascript",
	}

	tests := []struct {
		name string
		meta map[string]any
		want Defaults
	}{
		{
			name: "empty metadata falls back to source config",
			meta: map[string]any{},
			want: Defaults{Language: "javascript"},
		},
		{
			name: "front matter overrides source language",
			meta: map[string]any{"language": "typescript", "framework": "react"},
			want: Defaults{Language: "typescript", Framework: "react"},
		},
		{
			name: "valid category and severity adopted",
			meta: map[string]any{"category": "security", "severity": "error"},
			want: Defaults{
				Category: types.CategorySecurity,
				Severity: types.SeverityError,
				Language: "javascript",
			},
		},
		{
			name: "values outside the closed sets ignored",
			meta: map[string]any{"category": "vibes", "severity": "catastrophic"},
			want: Defaults{Language: "javascript"},
		},
		{
			name: "tags lower-cased",
			meta: map[string]any{"tags": []any{"Frontend", "Style"}},
			want: Defaults{Language: "javascript", Tags: []string{"frontend", "style"}},
		},
		{
			name: "scalar tag tolerated",
			meta: map[string]any{"tags": "Style"},
			want: Defaults{Language: "javascript", Tags: []string{"style"}},
		},
		{
			name: "title captured for the overview record",
			meta: map[string]any{"title": "House Style"},
			want: Defaults{Language: "javascript", Title: "House Style"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultsFromFrontMatter(tt.meta, src)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DefaultsFromFrontMatter() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDefaultsLanguageFallsBackToGeneral(t *testing.T) {
	got := DefaultsFromFrontMatter(map[string]any{}, types.SourceConfig{Name: "s"})
	if got.Language != types.DefaultLanguage {
		t.Errorf("Language = %q, want %q", got.Language, types.DefaultLanguage)
	}
}
