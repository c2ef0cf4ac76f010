package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized indicates the request was rejected for missing or
// expired credentials. Views catch this to redirect to the login flow.
var ErrUnauthorized = errors.New("authentication required")

// APIError carries a non-2xx response from the platform.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (HTTP %d)", e.Detail, e.StatusCode)
	}
	return fmt.Sprintf("api: HTTP %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// errorFromResponse decodes the backend's {"detail": ...} error envelope.
func errorFromResponse(status int, body []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &payload)
	return &APIError{StatusCode: status, Detail: payload.Detail}
}

// retryable reports whether a read query may be attempted a second time.
// Client errors (4xx) are final; network failures and server errors are
// treated as transient. Context errors are never retried.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	// Transport-level failures (timeouts, connection refused, EOF).
	return true
}
