package deckgen

import "strings"

// StripMarkdownFences removes a leading ```-fence line (with or without a
// language tag) and everything from the last remaining ``` marker onward.
// Text without fences passes through unchanged. Total and idempotent.
func StripMarkdownFences(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	if nl := strings.Index(t, "\n"); nl != -1 {
		t = t[nl+1:]
	}
	if last := strings.LastIndex(t, "```"); last != -1 {
		t = t[:last]
	}
	return strings.TrimSpace(t)
}

// ExtractJSONObject returns the inclusive substring between the first '{'
// and the last '}' when both exist in order; otherwise the input unchanged.
// It tolerates models that wrap the object in commentary despite the prompt.
func ExtractJSONObject(text string) string {
	t := strings.TrimSpace(text)
	start := strings.Index(t, "{")
	end := strings.LastIndex(t, "}")
	if start == -1 || end == -1 || end <= start {
		return t
	}
	return strings.TrimSpace(t[start : end+1])
}

// Sanitize is the full best-effort cleanup applied to raw completion text.
// It never fails; strictness belongs to the validator.
func Sanitize(text string) string {
	return ExtractJSONObject(StripMarkdownFences(text))
}
