// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Use Const", "use-const"},
		{"Don't Repeat Yourself", "don-t-repeat-yourself"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"Error Handling: Wrap & Return", "error-handling-wrap-return"},
		{"HTTP/2 Support", "http-2-support"},
		{"already-a-slug", "already-a-slug"},
		{"UPPER", "upper"},
		{"123 Numbers First", "123-numbers-first"},
		{"---", "practice"},
		{"", "practice"},
		{"日本語", "practice"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSluggerSuffixesDuplicates(t *testing.T) {
	s := newSlugger()
	want := []string{"use-const", "use-const-2", "use-const-3", "other"}
	titles := []string{"Use Const", "Use const", "USE CONST!", "Other"}
	for i, title := range titles {
		if got := s.slug(title); got != want[i] {
			t.Errorf("slug(%q) = %q, want %q", title, got, want[i])
		}
	}
}
