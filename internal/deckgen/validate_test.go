package deckgen

import (
	"testing"

	"github.com/sprintslides/sprintslides-backend/internal/types"
)

func TestParseDeckHappyPath(t *testing.T) {
	t.Parallel()
	clean := `{"slides":[
		{"type":"overview","title":"Overview","content":"a\nb"},
		{"type":"core_concepts","title":"Core","content":"c"},
		{"type":"active_recall","title":"Recall","content":"d"},
		{"type":"examples","title":"Examples","content":"e"},
		{"type":"exam_tips","title":"Tips","content":"f"}
	]}`
	slides, derr := ParseDeck(clean, 5)
	if derr != nil {
		t.Fatalf("unexpected error: %v", derr)
	}
	if len(slides) != 5 {
		t.Fatalf("got=%d slides want=5", len(slides))
	}
	if slides[0].Type != "overview" || slides[0].Title != "Overview" || slides[0].Content != "a\nb" {
		t.Fatalf("first slide mismatch: %+v", slides[0])
	}
}

func TestParseDeckMalformedJSON(t *testing.T) {
	t.Parallel()
	_, derr := ParseDeck(`{"slides":[`, 5)
	if derr == nil || derr.Kind != KindMalformedJSON {
		t.Fatalf("got=%v want kind=%s", derr, KindMalformedJSON)
	}
}

func TestParseDeckMissingSlides(t *testing.T) {
	t.Parallel()
	for _, clean := range []string{`{}`, `{"slides":null}`, `{"other":1}`} {
		_, derr := ParseDeck(clean, 5)
		if derr == nil || derr.Kind != KindSchemaViolation {
			t.Fatalf("input %q: got=%v want kind=%s", clean, derr, KindSchemaViolation)
		}
	}
}

func TestParseDeckSlidesNotArray(t *testing.T) {
	t.Parallel()
	_, derr := ParseDeck(`{"slides":{"0":{"type":"overview"}}}`, 5)
	if derr == nil || derr.Kind != KindSchemaViolation {
		t.Fatalf("got=%v want kind=%s", derr, KindSchemaViolation)
	}
}

func TestParseDeckCountMismatch(t *testing.T) {
	t.Parallel()
	clean := `{"slides":[{"title":"1"},{"title":"2"},{"title":"3"},{"title":"4"}]}`
	_, derr := ParseDeck(clean, 5)
	if derr == nil || derr.Kind != KindSchemaViolation {
		t.Fatalf("got=%v want kind=%s", derr, KindSchemaViolation)
	}
	if derr.Expected != 5 || derr.Actual != 4 {
		t.Fatalf("got expected=%d actual=%d want expected=5 actual=4", derr.Expected, derr.Actual)
	}
}

func TestParseDeckCoercesNonStringFields(t *testing.T) {
	t.Parallel()
	clean := `{"slides":[
		{"type":1,"title":true,"content":["x","y"]},
		{"type":"overview","title":" padded ","content":null},
		{},
		{"type":"core_concepts","title":"t","content":"c"},
		{"type":"exam_tips","title":3.5,"content":"c"}
	]}`
	slides, derr := ParseDeck(clean, 5)
	if derr != nil {
		t.Fatalf("unexpected error: %v", derr)
	}
	if slides[0].Type != "1" || slides[0].Title != "true" {
		t.Fatalf("numeric/bool coercion failed: %+v", slides[0])
	}
	if slides[1].Title != "padded" {
		t.Fatalf("got=%q want trimmed %q", slides[1].Title, "padded")
	}
	if slides[1].Content != "" || slides[2].Type != "" {
		t.Fatalf("missing fields must default to empty strings: %+v %+v", slides[1], slides[2])
	}
	if slides[4].Title != "3.5" {
		t.Fatalf("float coercion failed: got=%q", slides[4].Title)
	}
}

func TestUnknownSlideTypes(t *testing.T) {
	t.Parallel()
	slides := []types.Slide{
		{Type: "overview"},
		{Type: "summary"},
		{Type: "summary"},
		{Type: "exam_tips"},
		{Type: ""},
	}
	got := UnknownSlideTypes(slides)
	if len(got) != 1 || got[0] != "summary" {
		t.Fatalf("got=%v want=[summary]", got)
	}
}
