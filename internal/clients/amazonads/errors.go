package amazonads

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedOperation = errors.New("operation not supported for campaign type")
	ErrInvalidInput         = errors.New("invalid input")
	ErrTokenRefresh         = errors.New("failed to refresh access token")
	ErrEmptyResponse        = errors.New("empty mutation response")
)

// APIError is a non-2xx response from the advertising API
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Amazon API error: %d - %s", e.StatusCode, e.Body)
}

// Retryable reports whether the status is worth another attempt
func (e *APIError) Retryable() bool {
	return isRetryableStatus(e.StatusCode)
}

// ItemFailure is one rejected item inside a 2xx mutation response
type ItemFailure struct {
	Index   int
	Code    string
	Details string
}

func (f ItemFailure) message() string {
	if f.Details != "" {
		return f.Details
	}
	return f.Code
}

// ItemError reports items that a 2xx mutation response marked as failed
type ItemError struct {
	Failures []ItemFailure
}

func (e *ItemError) Error() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, f.message())
	}
	return strings.Join(msgs, ", ")
}
