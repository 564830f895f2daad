package query

import "testing"

func TestAndGroup(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "nil", tokens: nil, want: ""},
		{name: "empty", tokens: []string{}, want: ""},
		{name: "only blanks", tokens: []string{" ", ""}, want: ""},
		{name: "single term is bare", tokens: []string{"React"}, want: "React"},
		{name: "single after blanks", tokens: []string{"", "React", "  "}, want: "React"},
		{name: "two terms", tokens: []string{"React", "Node.js"}, want: "(React AND Node.js)"},
		{name: "quoted term", tokens: []string{"machine learning", "Go"}, want: `("machine learning" AND Go)`},
		{name: "no dedup", tokens: []string{"React", "React"}, want: "(React AND React)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AndGroup(tt.tokens); got != tt.want {
				t.Errorf("AndGroup(%q) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestOrGroup(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "empty", tokens: nil, want: ""},
		{name: "single", tokens: []string{"Go"}, want: "Go"},
		{name: "three", tokens: []string{"Go", "Golang", "Go lang"}, want: `(Go OR Golang OR "Go lang")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrGroup(tt.tokens); got != tt.want {
				t.Errorf("OrGroup(%q) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestNotGroup(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{name: "empty", tokens: nil, want: ""},
		{name: "blanks", tokens: []string{"", " "}, want: ""},
		{name: "single", tokens: []string{"recruiter"}, want: "-recruiter"},
		{name: "two", tokens: []string{"recruiter", "HR"}, want: "-recruiter -HR"},
		{name: "quoted", tokens: []string{"talent acquisition"}, want: `-"talent acquisition"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NotGroup(tt.tokens); got != tt.want {
				t.Errorf("NotGroup(%q) = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestJoin_SkipsEmptyTerms(t *testing.T) {
	got := Join([]string{"", "(a OR b)", "", "c"}, "AND")
	if want := "((a OR b) AND c)"; got != want {
		t.Errorf("Join() = %q, want %q", got, want)
	}
}
