package deckgen

import (
	"errors"
	"fmt"
	"time"
)

// Kind names a pipeline failure class. Kinds are the machine-readable half
// of the error contract; the debug payload is the human-readable half.
type Kind string

const (
	KindConfiguration   Kind = "ConfigurationError"
	KindInvalidRequest  Kind = "InvalidRequest"
	KindRateLimited     Kind = "ProviderRateLimited"
	KindRequestFailed   Kind = "ProviderRequestFailed"
	KindEmptyCompletion Kind = "EmptyCompletion"
	KindMalformedJSON   Kind = "MalformedJson"
	KindSchemaViolation Kind = "SchemaViolation"
)

// previewLimit bounds how much raw provider text travels in debug payloads.
const previewLimit = 900

// Error is the single failure type the pipeline produces. Every stage fills
// in the diagnostics it owns; nothing here ever escapes as a panic.
type Error struct {
	Kind        Kind
	Message     string
	ModelsTried []string
	LastStatus  int
	LastBody    string
	RetryAfter  time.Duration
	RawText     string
	CleanText   string
	Expected    int
	Actual      int
	Err         error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Err.Error())
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Debug assembles the diagnostic payload surfaced on pipeline failures.
// Provider text is clipped so a runaway completion cannot balloon the
// response body.
func (e *Error) Debug() map[string]any {
	if e == nil {
		return nil
	}
	debug := map[string]any{"kind": string(e.Kind)}
	if len(e.ModelsTried) > 0 {
		debug["models_tried"] = e.ModelsTried
	}
	if e.LastStatus != 0 {
		debug["last_status"] = e.LastStatus
	}
	if e.LastBody != "" {
		debug["last_body"] = clip(e.LastBody, previewLimit)
	}
	if e.RetryAfter > 0 {
		debug["retry_after_seconds"] = int(e.RetryAfter / time.Second)
	}
	if e.RawText != "" {
		debug["raw_preview"] = clip(e.RawText, previewLimit)
	}
	if e.CleanText != "" {
		debug["cleaned_preview"] = clip(e.CleanText, previewLimit)
	}
	if e.Expected != 0 || e.Actual != 0 {
		debug["expected_slides"] = e.Expected
		debug["actual_slides"] = e.Actual
	}
	return debug
}

// AsError unwraps a pipeline error from an error chain.
func AsError(err error) (*Error, bool) {
	var pe *Error
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
