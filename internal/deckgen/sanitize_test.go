package deckgen

import "testing"

func TestStripMarkdownFences(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no fences", in: `{"slides":[]}`, want: `{"slides":[]}`},
		{name: "json fence", in: "```json\n{\"slides\":[]}\n```", want: `{"slides":[]}`},
		{name: "bare fence", in: "```\n{\"slides\":[]}\n```", want: `{"slides":[]}`},
		{name: "surrounding whitespace", in: "  \n```json\n{\"a\":1}\n```\n  ", want: `{"a":1}`},
		{name: "unterminated fence", in: "```json\n{\"a\":1}", want: `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripMarkdownFences(tt.in); got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "pure object", in: `{"slides":[]}`, want: `{"slides":[]}`},
		{name: "leading prose", in: `Sure! Here is the deck: {"slides":[]}`, want: `{"slides":[]}`},
		{name: "trailing prose", in: `{"slides":[]} hope this helps`, want: `{"slides":[]}`},
		{name: "no braces", in: "not json at all", want: "not json at all"},
		{name: "reversed braces", in: "} oops {", want: "} oops {"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExtractJSONObject(tt.in); got != tt.want {
				t.Fatalf("got=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestSanitizeFencedObject(t *testing.T) {
	t.Parallel()
	in := "```json\n{\"slides\":[]}\n```"
	if got := Sanitize(in); got != `{"slides":[]}` {
		t.Fatalf("got=%q want=%q", got, `{"slides":[]}`)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"```json\n{\"slides\":[]}\n```",
		`some text {"slides":[{"type":"overview"}]} tail`,
		"no json here",
		"",
	}
	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: once=%q twice=%q", in, once, twice)
		}
	}
}

func TestSanitizeNeverPanicsOnjunk(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "```", "```\n", "{", "}", "```json"} {
		_ = Sanitize(in)
	}
}
