// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// Section is one practice-bearing chunk of a document: a second-level heading
// and the body up to the next second-level heading or end of document.
type Section struct {
	Heading string
	Body    string
}

// sectionHeadingRe matches a well-formed second-level heading: exactly two
// markers, whitespace, then text. Lines with three or more markers or with no
// heading text do not open a section.
var sectionHeadingRe = regexp.MustCompile(`^##[ \t]+(\S.*)$`)

// SplitSections segments a document body into one Section per second-level
// heading, in document order. Content before the first heading is file-level
// preamble and is discarded; the overview record carries it instead (R2.1-R2.3).
func SplitSections(body string) []Section {
	var (
		sections  []Section
		current   *Section
		bodyLines []string
	)

	flush := func() {
		if current != nil {
			current.Body = strings.Join(bodyLines, "\n")
			sections = append(sections, *current)
		}
		bodyLines = nil
	}

	for _, line := range strings.Split(body, "\n") {
		if m := sectionHeadingRe.FindStringSubmatch(line); m != nil && !strings.HasPrefix(m[1], "#") {
			flush()
			current = &Section{Heading: strings.TrimSpace(m[1])}
			continue
		}
		if current != nil {
			bodyLines = append(bodyLines, line)
		}
	}
	flush()

	return sections
}
