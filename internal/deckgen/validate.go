package deckgen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sprintslides/sprintslides-backend/internal/types"
)

// ParseDeck strictly validates sanitized completion text against the deck
// shape: a JSON object with a "slides" array of exactly n elements, each an
// object whose type/title/content coerce to strings (missing fields default
// to ""). No truncation, no padding: a near-miss count is a failure.
func ParseDeck(clean string, n int) ([]types.Slide, *Error) {
	var payload struct {
		Slides json.RawMessage `json:"slides"`
	}
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, &Error{
			Kind:      KindMalformedJSON,
			Message:   "completion is not valid JSON",
			CleanText: clean,
			Err:       err,
		}
	}

	if len(payload.Slides) == 0 || string(payload.Slides) == "null" {
		return nil, &Error{
			Kind:      KindSchemaViolation,
			Message:   "missing slides field",
			CleanText: clean,
		}
	}

	var items []map[string]any
	if err := json.Unmarshal(payload.Slides, &items); err != nil {
		return nil, &Error{
			Kind:      KindSchemaViolation,
			Message:   "slides is not an array of objects",
			CleanText: clean,
			Err:       err,
		}
	}

	if len(items) != n {
		return nil, &Error{
			Kind:      KindSchemaViolation,
			Message:   fmt.Sprintf("slide count mismatch: expected %d, got %d", n, len(items)),
			CleanText: clean,
			Expected:  n,
			Actual:    len(items),
		}
	}

	slides := make([]types.Slide, 0, n)
	for _, item := range items {
		slides = append(slides, types.Slide{
			Type:    coerceString(item["type"]),
			Title:   coerceString(item["title"]),
			Content: coerceString(item["content"]),
		})
	}
	return slides, nil
}

// UnknownSlideTypes reports type values outside the prompt's closed set.
// Callers log these; they do not fail the deck.
func UnknownSlideTypes(slides []types.Slide) []string {
	allowed := make(map[string]bool, len(AllowedSlideTypes))
	for _, t := range AllowedSlideTypes {
		allowed[t] = true
	}
	var unknown []string
	seen := map[string]bool{}
	for _, s := range slides {
		if s.Type == "" || allowed[s.Type] || seen[s.Type] {
			continue
		}
		seen[s.Type] = true
		unknown = append(unknown, s.Type)
	}
	return unknown
}

func coerceString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
