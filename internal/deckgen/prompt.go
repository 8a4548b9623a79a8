package deckgen

import (
	"fmt"
	"strings"
)

const (
	MinSlideCount     = 5
	MaxSlideCount     = 15
	DefaultSlideCount = 5
)

// SystemPrompt reinforces JSON-only output on every completion request.
const SystemPrompt = "You output ONLY valid JSON. Never add any other text."

// AllowedSlideTypes is the closed set declared in the prompt contract.
// Validation treats values outside it as a soft warning, not a failure.
var AllowedSlideTypes = []string{"overview", "core_concepts", "active_recall", "examples", "exam_tips"}

// ValidateRequest rejects bad input before any provider call is made.
func ValidateRequest(topic string, n int) *Error {
	if strings.TrimSpace(topic) == "" {
		return &Error{Kind: KindInvalidRequest, Message: "Missing topic"}
	}
	if n < MinSlideCount || n > MaxSlideCount {
		return &Error{
			Kind:    KindInvalidRequest,
			Message: fmt.Sprintf("slideCount must be between %d and %d", MinSlideCount, MaxSlideCount),
		}
	}
	return nil
}

// BuildPrompt renders the user-turn instruction text for one deck request.
// Pure: identical inputs produce identical output.
func BuildPrompt(topic string, n int) string {
	return strings.TrimSpace(fmt.Sprintf(`
Return ONLY strict JSON. No markdown. No commentary.

You are an expert academic coach.

Create a %d-slide revision deck for the topic: "%s".
Focus strongly on:
1) Active Recall
2) Structural Learning

STRICT RULES:
- Output MUST be valid JSON
- Must start with { and end with }
- No extra text before or after JSON
- "slides" MUST be a JSON ARRAY (list)
- EXACTLY %d slides
- Never return slides as an object/dict

Schema:
{
  "slides": [
    {
      "type": "%s",
      "title": "string",
      "content": "string"
    }
  ]
}

Slide requirements:
- Each slide should be rich: 8-12 bullet points OR detailed explanation
- Assume exam revision: include definitions, key concepts, common traps/mistakes
- Use \n for newlines in content
- Ensure JSON is complete (quotes closed etc.)

Now output ONLY the JSON.
`, n, strings.TrimSpace(topic), n, strings.Join(AllowedSlideTypes, "|")))
}

// MaxCompletionTokens bounds the output budget for an n-slide deck.
func MaxCompletionTokens(n int) int {
	budget := 1200 + n*350
	if budget > 6500 {
		budget = 6500
	}
	return budget
}
