package logger

import "testing"

func TestSanitizeKVsRedactsCredentialKeys(t *testing.T) {
	t.Parallel()

	out := sanitizeKVs([]interface{}{"api_key", "gsk_live_abc", "model", "llama-3.1-8b-instant"})
	if len(out) != 4 {
		t.Fatalf("unexpected kv length: got=%d want=%d", len(out), 4)
	}
	if out[1] != "[REDACTED]" {
		t.Fatalf("api_key value not redacted: got=%v", out[1])
	}
	if out[3] != "llama-3.1-8b-instant" {
		t.Fatalf("non-secret value mangled: got=%v", out[3])
	}
}

func TestSanitizeKVsKeepsDanglingKey(t *testing.T) {
	t.Parallel()

	out := sanitizeKVs([]interface{}{"only_key"})
	if len(out) != 1 || out[0] != "only_key" {
		t.Fatalf("dangling key dropped: got=%v", out)
	}
}
