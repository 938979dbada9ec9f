// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"reflect"
	"testing"
)

func TestExtractExamples(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantGood string
		wantBad  string
	}{
		{
			name: "labeled good and bad",
			body: "Prefer const.\n\nGood:\n```js\nconst x = 1;\n```\n\nBad:\n```js\nvar x = 1;\n```\n",
			wantGood: "const x = 1;",
			wantBad:  "var x = 1;",
		},
		{
			name: "heading-style labels",
			body: "### Good Example\n\n```go\nreturn err\n```\n\n### Bad Example\n\n```go\npanic(err)\n```\n",
			wantGood: "return err",
			wantBad:  "panic(err)",
		},
		{
			name: "bold labels with trailing colon",
			body: "**Do:**\n```py\nuse_helper()\n```\n**Avoid:**\n```py\ncopy_paste()\n```\n",
			wantGood: "use_helper()",
			wantBad:  "copy_paste()",
		},
		{
			name: "typographic apostrophe in don't",
			body: "Don’t:\n```js\neval(s)\n```\n",
			wantBad: "eval(s)",
		},
		{
			name: "bad label only",
			body: "Incorrect:\n```js\nwith (o) {}\n```\n",
			wantBad: "with (o) {}",
		},
		{
			name: "label buried in prose is not a label",
			body: "You should avoid this pattern entirely.\n```js\nfirst()\n```\n```js\nsecond()\n```\n",
			// "avoid" appears mid-sentence, so the labeled scan finds nothing
			// and the fallback sniff takes over: the intro mentions avoid, so
			// the first block is the anti-pattern.
			wantGood: "second()",
			wantBad:  "first()",
		},
		{
			name: "two unlabeled blocks default to good then bad",
			body: "Two ways to write it.\n```js\nfirst()\n```\nAnother way.\n```js\nsecond()\n```\n",
			wantGood: "first()",
			wantBad:  "second()",
		},
		{
			name: "single unlabeled block is the good example",
			body: "Like so:\n```js\nonly()\n```\n",
			wantGood: "only()",
		},
		{
			name: "no code blocks",
			body: "Just prose, no code at all.",
		},
		{
			name: "first labeled block wins per label",
			body: "Good:\n```js\nfirst_good()\n```\nGood:\n```js\nsecond_good()\n```\n",
			wantGood: "first_good()",
		},
		{
			name: "unterminated fence still yields a block",
			body: "Good:\n```js\ntruncated()",
			wantGood: "truncated()",
		},
		{
			name: "multiline block text preserved",
			body: "Recommended:\n```go\nif err != nil {\n\treturn err\n}\n```\n",
			wantGood: "if err != nil {\n\treturn err\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			good, bad := ExtractExamples(tt.body)
			if good != tt.wantGood {
				t.Errorf("good = %q, want %q", good, tt.wantGood)
			}
			if bad != tt.wantBad {
				t.Errorf("bad = %q, want %q", bad, tt.wantBad)
			}
		})
	}
}

func TestFenceLanguages(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "languages in fence order",
			body: "```js\na\n```\n```TypeScript\nb\n```\n",
			want: []string{"js", "typescript"},
		},
		{
			name: "text annotation excluded",
			body: "```text\nplain\n```\n```py\ncode\n```\n",
			want: []string{"py"},
		},
		{
			name: "bare fences contribute nothing",
			body: "```\nanon\n```\n",
			want: nil,
		},
		{
			name: "duplicates preserved for the caller to dedupe",
			body: "```go\na\n```\n```go\nb\n```\n",
			want: []string{"go", "go"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FenceLanguages(tt.body)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FenceLanguages() = %v, want %v", got, tt.want)
			}
		})
	}
}
