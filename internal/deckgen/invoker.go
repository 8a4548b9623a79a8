package deckgen

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sprintslides/sprintslides-backend/internal/pkg/httpx"
	"github.com/sprintslides/sprintslides-backend/internal/platform/logger"
)

// CompletionClient issues exactly one completion request per call. The
// concrete implementation is the Groq chat-completions client.
type CompletionClient interface {
	Complete(ctx context.Context, model, system, user string, maxTokens int) (string, error)
}

// LLMObserver receives one observation per provider attempt.
type LLMObserver interface {
	ObserveLLMRequest(model, status string, dur time.Duration)
}

// invokeState drives the fallback loop. Exactly one terminal state is
// reached per invocation: succeeded, rateLimited, or exhausted.
type invokeState int

const (
	stateTrying invokeState = iota
	stateSucceeded
	stateRateLimited
	stateExhausted
)

// Invocation is the chosen completion: the raw assistant text and the
// candidate that produced it.
type Invocation struct {
	Text      string
	ModelUsed string
}

// Invoker tries model candidates in fixed priority order, one attempt each,
// strictly sequentially. A 429 from any candidate aborts the whole loop:
// rate limits are assumed provider-wide, so further candidates would only
// burn quota.
type Invoker struct {
	log        *logger.Logger
	client     CompletionClient
	candidates []string
	timeout    time.Duration
	observer   LLMObserver
}

func NewInvoker(log *logger.Logger, client CompletionClient, candidates []string, timeout time.Duration, observer LLMObserver) (*Invoker, error) {
	if client == nil {
		return nil, &Error{Kind: KindConfiguration, Message: "completion client required"}
	}
	if len(candidates) == 0 {
		return nil, &Error{Kind: KindConfiguration, Message: "at least one model candidate required"}
	}
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Invoker{
		log:        log.With("component", "Invoker"),
		client:     client,
		candidates: candidates,
		timeout:    timeout,
		observer:   observer,
	}, nil
}

// Invoke runs the candidate loop and returns the first usable completion.
func (iv *Invoker) Invoke(ctx context.Context, system, user string, maxTokens int) (Invocation, *Error) {
	state := stateTrying

	var (
		chosen     Invocation
		rlErr      *Error
		tried      []string
		lastErr    error
		lastStatus int
		lastBody   string
	)

	for i := 0; state == stateTrying && i < len(iv.candidates); i++ {
		model := iv.candidates[i]

		if err := ctx.Err(); err != nil {
			return Invocation{}, &Error{
				Kind:        KindRequestFailed,
				Message:     "request aborted before candidate " + model,
				ModelsTried: tried,
				Err:         err,
			}
		}

		tried = append(tried, model)
		attemptCtx, cancel := context.WithTimeout(ctx, iv.timeout)
		start := time.Now()
		text, err := iv.client.Complete(attemptCtx, model, system, user, maxTokens)
		cancel()
		iv.observe(model, err, time.Since(start))

		if err == nil {
			if strings.TrimSpace(text) != "" {
				state = stateSucceeded
				chosen = Invocation{Text: text, ModelUsed: model}
				continue
			}
			lastErr = &Error{Kind: KindEmptyCompletion, Message: "candidate " + model + " returned empty text"}
			iv.log.Warn("candidate returned empty completion", "model", model)
			continue
		}

		status := httpx.StatusCode(err)
		if status == http.StatusTooManyRequests {
			state = stateRateLimited
			rlErr = &Error{
				Kind:        KindRateLimited,
				Message:     "provider rate limited on " + model,
				ModelsTried: tried,
				LastStatus:  status,
				LastBody:    httpx.ErrorBody(err),
				RetryAfter:  httpx.RetryAfterOf(err),
				Err:         err,
			}
			continue
		}

		lastErr = err
		lastStatus = status
		lastBody = httpx.ErrorBody(err)
		iv.log.Warn("candidate failed, falling back",
			"model", model,
			"status", status,
			"error", err.Error(),
		)
	}
	if state == stateTrying {
		state = stateExhausted
	}

	switch state {
	case stateSucceeded:
		return chosen, nil
	case stateRateLimited:
		return Invocation{}, rlErr
	default:
		return Invocation{}, &Error{
			Kind:        KindEmptyCompletion,
			Message:     "all model candidates exhausted without usable text",
			ModelsTried: tried,
			LastStatus:  lastStatus,
			LastBody:    lastBody,
			Err:         lastErr,
		}
	}
}

func (iv *Invoker) observe(model string, err error, dur time.Duration) {
	if iv.observer == nil {
		return
	}
	status := "200"
	if err != nil {
		status = "error"
		if code := httpx.StatusCode(err); code != 0 {
			status = strconv.Itoa(code)
		}
	}
	iv.observer.ObserveLLMRequest(model, status, dur)
}
