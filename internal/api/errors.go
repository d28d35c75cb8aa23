package api

import "fmt"

// errNetwork is the message used when the backend could not be reached or
// returned an unreadable body. Callers distinguish transport failures from
// backend rejections by StatusCode == 0, never structurally.
const errNetwork = "Network error. Please check your connection."

// APIError is the single error type surfaced by the backend client. A zero
// StatusCode means the failure happened before an HTTP status was obtained.
type APIError struct {
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

func networkError() *APIError {
	return &APIError{Message: errNetwork}
}
