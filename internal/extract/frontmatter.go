// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/pdiddy/standards-engine/pkg/types"
)

// SplitFrontMatter separates a leading YAML front matter block from the
// document body. A document without a front matter delimiter returns an empty
// map and the full input; malformed front matter is recovered the same way
// rather than reported. Never fails (R1.2).
func SplitFrontMatter(content string) (map[string]any, string) {
	var meta map[string]any
	body, err := frontmatter.Parse(strings.NewReader(content), &meta)
	if err != nil {
		return map[string]any{}, content
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, string(body)
}

// metaString returns the string value for key, or "" when absent or not a string.
func metaString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// metaStringSlice returns the string values listed under key. Scalar strings
// and mixed-type arrays are tolerated; non-string elements are dropped.
func metaStringSlice(meta map[string]any, key string) []string {
	switch v := meta[key].(type) {
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case []string:
		return v
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{strings.TrimSpace(v)}
	default:
		return nil
	}
}

// Defaults carries the document- and source-level fallback values the
// assembler applies to every practice in one file (R7.1).
type Defaults struct {
	Category  types.Category
	Severity  types.Severity
	Language  string
	Framework string
	Tags      []string
	Title     string
}

// DefaultsFromFrontMatter merges front matter metadata with the source
// registration's configured defaults. Front matter wins; category and
// severity values outside their closed sets are ignored rather than
// propagated (R7.1, R7.2).
func DefaultsFromFrontMatter(meta map[string]any, src types.SourceConfig) Defaults {
	d := Defaults{
		Language:  src.Language,
		Framework: src.Framework,
		Title:     metaString(meta, "title"),
	}

	if c := types.Category(metaString(meta, "category")); types.ValidCategory(c) {
		d.Category = c
	}
	if s := types.Severity(metaString(meta, "severity")); types.ValidSeverity(s) {
		d.Severity = s
	}
	if lang := metaString(meta, "language"); lang != "" {
		d.Language = lang
	}
	if fw := metaString(meta, "framework"); fw != "" {
		d.Framework = fw
	}
	if d.Language == "" {
		d.Language = types.DefaultLanguage
	}

	for _, tag := range metaStringSlice(meta, "tags") {
		d.Tags = append(d.Tags, strings.ToLower(tag))
	}

	return d
}
