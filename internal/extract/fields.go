// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// descriptionLimit caps the fallback description taken from the raw section
// body when no paragraph qualifies (R6.1).
const descriptionLimit = 200

// ExtractDescription returns the first paragraph of the section body that
// does not start with a code fence or heading marker. When none qualifies the
// raw section text is truncated instead, so every practice carries some
// description (R6.1).
func ExtractDescription(body string) string {
	for _, para := range splitParagraphs(body) {
		if strings.HasPrefix(para, "```") || strings.HasPrefix(para, "#") {
			continue
		}
		return para
	}

	raw := strings.TrimSpace(body)
	if runes := []rune(raw); len(runes) > descriptionLimit {
		raw = strings.TrimSpace(string(runes[:descriptionLimit]))
	}
	return raw
}

// splitParagraphs breaks text into non-empty blocks separated by blank lines.
func splitParagraphs(text string) []string {
	var (
		paras   []string
		current []string
	)

	flush := func() {
		if len(current) > 0 {
			paras = append(paras, strings.TrimSpace(strings.Join(current, "\n")))
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return paras
}

// rationaleHeadingRe matches a third-level subsection heading.
var rationaleHeadingRe = regexp.MustCompile(`^###[ \t]+(\S.*)$`)

// ExtractRationale returns the content of a third-level subsection whose
// heading text equals "rationale", case-insensitive. Empty when the section
// has no such subsection (R6.2).
func ExtractRationale(body string) string {
	var (
		capturing bool
		lines     []string
	)

	for _, line := range strings.Split(body, "\n") {
		if m := rationaleHeadingRe.FindStringSubmatch(line); m != nil {
			if capturing {
				break
			}
			capturing = strings.EqualFold(strings.TrimSpace(m[1]), "rationale")
			continue
		}
		if capturing {
			if sectionHeadingRe.MatchString(line) {
				break
			}
			lines = append(lines, line)
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// Lint rule patterns (R6.3). Three independent families; their union is the
// rule set for a section.
var (
	// namespacedRuleRe matches organization-scoped, slash-separated rule ids
	// like "@typescript-eslint/no-explicit-any" or "import/order".
	namespacedRuleRe = regexp.MustCompile(`@?[a-z0-9][a-z0-9-]*(?:/[a-z0-9][a-z0-9-]*)+`)

	// eslintRuleRe matches the word "eslint" followed by an identifier,
	// as in "eslint: no-console" or "the eslint no-var setting".
	eslintRuleRe = regexp.MustCompile(`(?i)\beslint[:\s]+([a-zA-Z0-9@][a-zA-Z0-9@/_-]*)`)

	// quotedRuleRe matches a backtick- or bracket-quoted identifier
	// immediately followed by the word "rule", as in "`no-console` rule".
	quotedRuleRe = regexp.MustCompile("[`\\[]([A-Za-z0-9@][A-Za-z0-9@/_-]*)[`\\]]\\s+rule")
)

// ExtractLintRules returns the lint rule identifiers referenced in a section,
// de-duplicated with first-occurrence order preserved (R6.3).
func ExtractLintRules(body string) []string {
	seen := make(map[string]bool)
	var rules []string

	add := func(rule string) {
		if rule == "" || seen[rule] {
			return
		}
		seen[rule] = true
		rules = append(rules, rule)
	}

	for _, m := range namespacedRuleRe.FindAllString(body, -1) {
		add(m)
	}
	for _, m := range eslintRuleRe.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}
	for _, m := range quotedRuleRe.FindAllStringSubmatch(body, -1) {
		add(m[1])
	}

	return rules
}

// ExtractTags unions the document-level tags with every fence language
// annotation in the section body, lower-cased and de-duplicated in
// first-occurrence order (R6.4).
func ExtractTags(body string, docTags []string) []string {
	seen := make(map[string]bool)
	var tags []string

	add := func(tag string) {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || seen[tag] {
			return
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	for _, t := range docTags {
		add(t)
	}
	for _, lang := range FenceLanguages(body) {
		add(lang)
	}

	return tags
}
