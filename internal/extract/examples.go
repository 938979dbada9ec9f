// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"
)

// codeBlock is one fenced code block with the prose line that introduced it.
type codeBlock struct {
	lang  string
	text  string
	intro string
}

// Label lines recognized as introducing a fenced block (R5.1). The whole
// intro line, stripped of markdown markers and a trailing colon, must be the
// label word plus an optional "example"-style noun: "Good:", "### Bad
// Example", "Don't". Prose that merely mentions a label word ("avoid this
// pattern") is not a label; the fallback sniff handles it instead.
var (
	goodLabelRe = regexp.MustCompile(`(?i)^(good|correct|do|preferred|recommended)(\s+(example|examples|practice|approach|way))?$`)
	badLabelRe  = regexp.MustCompile(`(?i)^(bad|incorrect|don't|dont|avoid|wrong)(\s+(example|examples|practice|approach|way))?$`)

	// fallbackBadRe decides which unlabeled block is the anti-pattern when a
	// section shows blocks with no label lines (R5.2).
	fallbackBadRe = regexp.MustCompile(`(?i)\b(avoid|bad|don't)\b`)
)

// ExtractExamples returns the good and bad example code for a section.
// Labeled blocks win: the first block under a good-label line becomes the
// good example and the first under a bad-label line becomes the bad example;
// the two scans are independent. Only when no label matched at all does the
// fallback run: a two-block section is split by sniffing the text before the
// first block for avoid/bad/don't, and a single block is taken as the good
// example. The fallback is best-effort and known-ambiguous; it is kept a
// heuristic, not a guarantee (R5.1-R5.3).
func ExtractExamples(body string) (good, bad string) {
	blocks := parseCodeBlocks(body)
	if len(blocks) == 0 {
		return "", ""
	}

	for _, b := range blocks {
		label := labelText(b.intro)
		if bad == "" && badLabelRe.MatchString(label) {
			bad = b.text
			continue
		}
		if good == "" && goodLabelRe.MatchString(label) {
			good = b.text
		}
	}
	if good != "" || bad != "" {
		return good, bad
	}

	if len(blocks) >= 2 {
		if fallbackBadRe.MatchString(normalizeApostrophes(blocks[0].intro)) {
			return blocks[1].text, blocks[0].text
		}
		return blocks[0].text, blocks[1].text
	}

	return blocks[0].text, ""
}

// FenceLanguages returns the language annotation of every fenced block in
// order, excluding the literal "text" annotation. Used for tag inference (R6.4).
func FenceLanguages(body string) []string {
	var langs []string
	for _, b := range parseCodeBlocks(body) {
		lang := strings.ToLower(b.lang)
		if lang != "" && lang != "text" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// parseCodeBlocks scans for triple-backtick fenced blocks. The intro is the
// nearest non-blank line above the opening fence.
func parseCodeBlocks(body string) []codeBlock {
	var (
		blocks    []codeBlock
		lastProse string
		inFence   bool
		current   codeBlock
		fenceBody []string
	)

	for _, line := range strings.Split(body, "\n") {
		trimmed := strings.TrimSpace(line)

		if inFence {
			if strings.HasPrefix(trimmed, "```") {
				current.text = strings.Join(fenceBody, "\n")
				blocks = append(blocks, current)
				inFence = false
				fenceBody = nil
				lastProse = ""
				continue
			}
			fenceBody = append(fenceBody, line)
			continue
		}

		if strings.HasPrefix(trimmed, "```") {
			inFence = true
			current = codeBlock{
				lang:  strings.TrimSpace(strings.TrimPrefix(trimmed, "```")),
				intro: lastProse,
			}
			continue
		}

		if trimmed != "" {
			lastProse = trimmed
		}
	}

	// An unterminated fence still yields a block with what was collected.
	if inFence {
		current.text = strings.Join(fenceBody, "\n")
		blocks = append(blocks, current)
	}

	return blocks
}

// labelText reduces an intro line to its bare label form: markdown heading,
// list, and emphasis markers removed, apostrophes folded, trailing colon and
// periods dropped.
func labelText(intro string) string {
	s := normalizeApostrophes(intro)
	s = strings.TrimLeft(s, "#>-* \t")
	s = strings.NewReplacer("*", "", "_", "", "`", "").Replace(s)
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ":.")
	return strings.TrimSpace(s)
}

// normalizeApostrophes folds typographic apostrophes so "don’t" matches "don't".
func normalizeApostrophes(s string) string {
	return strings.ReplaceAll(s, "’", "'")
}
