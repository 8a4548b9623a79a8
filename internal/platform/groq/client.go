package groq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sprintslides/sprintslides-backend/internal/pkg/httpx"
	"github.com/sprintslides/sprintslides-backend/internal/platform/logger"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// HTTPError is a non-2xx provider response. It keeps the status and body for
// the failure diagnostics the caller surfaces, and the Retry-After value when
// the provider rate-limited us.
type HTTPError struct {
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("groq http %d: %s", e.StatusCode, e.Body)
}

func (e *HTTPError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

func (e *HTTPError) HTTPBody() string {
	if e == nil {
		return ""
	}
	return e.Body
}

func (e *HTTPError) RetryAfterHint() time.Duration {
	if e == nil {
		return 0
	}
	return e.RetryAfter
}

var (
	_ httpx.HTTPStatusCoder  = (*HTTPError)(nil)
	_ httpx.HTTPBodyCarrier  = (*HTTPError)(nil)
	_ httpx.RetryAfterHinter = (*HTTPError)(nil)
)

// Client calls the Groq Chat Completions API (OpenAI-compatible).
// It performs exactly one request per Complete call; fallback across model
// candidates is the caller's policy, not the transport's.
type Client struct {
	log         *logger.Logger
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	temperature float64
	jsonMode    bool
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(strings.TrimSpace(u), "/") }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func WithTemperature(t float64) Option {
	return func(c *Client) { c.temperature = t }
}

func NewClient(log *logger.Logger, apiKey string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("missing GROQ_API_KEY")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	c := &Client{
		log:         log.With("service", "GroqClient"),
		httpClient:  &http.Client{},
		baseURL:     defaultBaseURL,
		apiKey:      apiKey,
		temperature: 0.4,
		jsonMode:    true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete issues one chat-completions request for the given model and
// returns the assistant text. Non-2xx statuses come back as *HTTPError.
func (c *Client) Complete(ctx context.Context, model, system, user string, maxTokens int) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: c.temperature,
		MaxTokens:   maxTokens,
	}
	if c.jsonMode {
		reqBody.ResponseFormat = map[string]string{"type": "json_object"}
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(reqBody); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", readErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			RetryAfter: httpx.RetryAfter(resp.Header),
		}
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("groq decode error: %w; raw=%s", err, string(raw))
	}
	if len(out.Choices) == 0 {
		return "", nil
	}
	return out.Choices[0].Message.Content, nil
}
