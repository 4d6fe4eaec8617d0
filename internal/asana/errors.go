package asana

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// AuthError indicates the API rejected the token (401/403).
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed (status %d): %s", e.StatusCode, e.Message)
}

// NotFoundError indicates the task ID does not name an existing task.
type NotFoundError struct {
	TaskID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task %s not found", e.TaskID)
}

// TransientError indicates a failure worth one immediate retry: a
// transport error, timeout, rate limit, or server-side 5xx.
type TransientError struct {
	StatusCode int // 0 for transport-level failures
	Err        error
	Message    string
}

func (e *TransientError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transient error: %v", e.Err)
	}
	return fmt.Sprintf("transient error (status %d): %s", e.StatusCode, e.Message)
}

func (e *TransientError) Unwrap() error { return e.Err }

// APIError covers any other non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Asana API error (status %d): %s", e.StatusCode, e.Message)
}

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// errorMessage pulls the human-readable message out of an Asana error
// body, e.g. {"errors":[{"message":"..."}]}. Falls back to the raw body.
func errorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "errors.0.message"); msg.Exists() {
		return msg.String()
	}
	if len(body) == 0 {
		return "no response body"
	}
	return string(body)
}
