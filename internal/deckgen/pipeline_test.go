package deckgen

import (
	"context"
	"strings"
	"testing"
	"time"
)

func newTestPipeline(t *testing.T, client CompletionClient, candidates []string) *Pipeline {
	t.Helper()
	iv, err := NewInvoker(testLogger(), client, candidates, time.Second, nil)
	if err != nil {
		t.Fatalf("NewInvoker: %v", err)
	}
	p, perr := NewPipeline(testLogger(), iv)
	if perr != nil {
		t.Fatalf("NewPipeline: %v", perr)
	}
	return p
}

const photosynthesisDeck = `{"slides":[
	{"type":"overview","title":"Photosynthesis at a Glance","content":"- Converts light to chemical energy"},
	{"type":"core_concepts","title":"Light Reactions","content":"- Thylakoid membranes\n- ATP and NADPH"},
	{"type":"active_recall","title":"Quiz Yourself","content":"- Where does the Calvin cycle run?"},
	{"type":"examples","title":"Worked Examples","content":"- C3 vs C4 plants"},
	{"type":"exam_tips","title":"Exam Tips","content":"- Do not confuse inputs and outputs"}
]}`

func TestPipelineRunHappyPath(t *testing.T) {
	t.Parallel()
	client := &scriptedClient{replies: map[string]scriptedReply{
		"model-a": {text: "```json\n" + photosynthesisDeck + "\n```"},
	}}
	p := newTestPipeline(t, client, []string{"model-a"})

	res, derr := p.Run(context.Background(), "Photosynthesis", 5)
	if derr != nil {
		t.Fatalf("unexpected error: %v", derr)
	}
	if res.ModelUsed != "model-a" {
		t.Fatalf("got=%q want=%q", res.ModelUsed, "model-a")
	}
	if len(res.Slides) != 5 {
		t.Fatalf("got=%d slides want=5", len(res.Slides))
	}
	if res.Slides[0].Type != "overview" {
		t.Fatalf("got first type=%q want=%q", res.Slides[0].Type, "overview")
	}
	if strings.HasPrefix(res.CleanText, "```") {
		t.Fatalf("fences survived sanitization: %q", res.CleanText)
	}
	if !strings.HasPrefix(res.RawText, "```") {
		t.Fatalf("raw text must be preserved verbatim: %q", res.RawText)
	}
}

func TestPipelineRunRejectsBadInput(t *testing.T) {
	t.Parallel()
	client := &scriptedClient{replies: map[string]scriptedReply{}}
	p := newTestPipeline(t, client, []string{"model-a"})

	if _, derr := p.Run(context.Background(), "", 5); derr == nil || derr.Kind != KindInvalidRequest {
		t.Fatalf("got=%v want kind=%s", derr, KindInvalidRequest)
	}
	if _, derr := p.Run(context.Background(), "Photosynthesis", 99); derr == nil || derr.Kind != KindInvalidRequest {
		t.Fatalf("got=%v want kind=%s", derr, KindInvalidRequest)
	}
	if len(client.calls) != 0 {
		t.Fatalf("invalid input must never reach the provider: calls=%v", client.calls)
	}
}

func TestPipelineRunEnrichesValidationErrors(t *testing.T) {
	t.Parallel()
	raw := "```json\n" + `{"slides":[{"title":"only one"}]}` + "\n```"
	client := &scriptedClient{replies: map[string]scriptedReply{
		"model-a": {text: raw},
	}}
	p := newTestPipeline(t, client, []string{"model-a"})

	_, derr := p.Run(context.Background(), "Photosynthesis", 5)
	if derr == nil || derr.Kind != KindSchemaViolation {
		t.Fatalf("got=%v want kind=%s", derr, KindSchemaViolation)
	}
	if derr.RawText != raw {
		t.Fatalf("raw text not attached to error")
	}
	if len(derr.ModelsTried) == 0 || derr.ModelsTried[len(derr.ModelsTried)-1] != "model-a" {
		t.Fatalf("producing model not recorded: %v", derr.ModelsTried)
	}
	if derr.Expected != 5 || derr.Actual != 1 {
		t.Fatalf("got expected=%d actual=%d want expected=5 actual=1", derr.Expected, derr.Actual)
	}
}

func TestPipelineRunPropagatesRateLimit(t *testing.T) {
	t.Parallel()
	client := &scriptedClient{replies: map[string]scriptedReply{
		"model-a": {err: &fakeProviderError{status: 429, body: "slow down", retryAfter: 3 * time.Second}},
	}}
	p := newTestPipeline(t, client, []string{"model-a"})

	_, derr := p.Run(context.Background(), "Photosynthesis", 5)
	if derr == nil || derr.Kind != KindRateLimited {
		t.Fatalf("got=%v want kind=%s", derr, KindRateLimited)
	}
}
