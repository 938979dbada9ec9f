// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source enumerates candidate standard documents under a registered
// root. Implements: prd001-sources (R1-R2).
package source

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pdiddy/standards-engine/pkg/types"
)

// DefaultIncludes are the patterns applied when a source declares none.
var DefaultIncludes = []string{"**/*.md", "**/*.yaml", "**/*.yml", "**/*.json"}

// excludedDirs are conventional build and dependency directories never
// descended into, regardless of source patterns (R2.2).
var excludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
}

// Scan returns the slash-separated relative paths of every candidate file
// under the source root, matched against the include and exclude globs, in
// deterministic sorted order. A missing or unreadable root is a hard error
// for this source registration only (R1.1, R1.3, R2.1).
func Scan(src types.SourceConfig) ([]string, error) {
	info, err := os.Stat(src.Root)
	if err != nil {
		return nil, fmt.Errorf("source %s: root %s: %w", src.Name, src.Root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s: root %s is not a directory", src.Name, src.Root)
	}

	includes := src.Include
	if len(includes) == 0 {
		includes = DefaultIncludes
	}

	var paths []string
	err = filepath.WalkDir(src.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != src.Root && excludedDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(src.Root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if matchAny(includes, rel) && !matchAny(src.Exclude, rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("source %s: scanning %s: %w", src.Name, src.Root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// IsMarkdown reports whether the path takes the heuristic markdown extraction
// path rather than the structured rule-list path.
func IsMarkdown(relPath string) bool {
	ext := strings.ToLower(filepath.Ext(relPath))
	return ext == ".md" || ext == ".markdown"
}

func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		// An invalid pattern never matches.
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
