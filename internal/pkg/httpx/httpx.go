package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type HTTPStatusCoder interface {
	HTTPStatusCode() int
}

type HTTPBodyCarrier interface {
	HTTPBody() string
}

type RetryAfterHinter interface {
	RetryAfterHint() time.Duration
}

// StatusCode extracts an HTTP status code from an error chain, or 0 when the
// error carries none (transport failures, timeouts).
func StatusCode(err error) int {
	if err == nil {
		return 0
	}
	var sc HTTPStatusCoder
	if errors.As(err, &sc) {
		return sc.HTTPStatusCode()
	}
	return 0
}

// ErrorBody extracts the raw response body from an error chain, or "" when
// the error carries none.
func ErrorBody(err error) string {
	if err == nil {
		return ""
	}
	var bc HTTPBodyCarrier
	if errors.As(err, &bc) {
		return bc.HTTPBody()
	}
	return ""
}

// RetryAfterOf extracts the provider's Retry-After hint from an error chain,
// or 0 when the error carries none.
func RetryAfterOf(err error) time.Duration {
	if err == nil {
		return 0
	}
	var rh RetryAfterHinter
	if errors.As(err, &rh) {
		return rh.RetryAfterHint()
	}
	return 0
}

// RetryAfter parses a Retry-After header given in whole seconds. Returns 0
// when the header is absent or unparseable.
func RetryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	ra := strings.TrimSpace(h.Get("Retry-After"))
	if ra == "" {
		return 0
	}
	secs, err := strconv.Atoi(ra)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
