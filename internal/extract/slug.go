// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"fmt"
	"strings"
)

// Slugify derives a stable identifier from heading text: lowercase, runs of
// non-alphanumeric characters collapsed to a single hyphen, leading and
// trailing hyphens stripped. A heading with no alphanumeric characters at all
// yields "practice" so every record still has an addressable id (R7.3).
func Slugify(title string) string {
	var (
		b       strings.Builder
		pending bool
	)

	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
		default:
			pending = true
		}
	}

	if b.Len() == 0 {
		return "practice"
	}
	return b.String()
}

// slugger hands out file-unique slugs. Two headings in one file that slugify
// identically get numeric suffixes: "use-const", "use-const-2", "use-const-3".
type slugger struct {
	seen map[string]int
}

func newSlugger() *slugger {
	return &slugger{seen: make(map[string]int)}
}

func (s *slugger) slug(title string) string {
	base := Slugify(title)
	s.seen[base]++
	if n := s.seen[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return base
}
