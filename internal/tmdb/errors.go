package tmdb

import (
	"errors"
	"fmt"
)

// Sentinel errors for TMDb API operations. Callers match with errors.Is and
// decide whether to retry, degrade, or propagate; the client itself never
// retries.
var (
	ErrRateLimited  = errors.New("tmdb: rate limited by server")
	ErrUnauthorized = errors.New("tmdb: invalid API key")
	ErrNotFound     = errors.New("tmdb: not found")
	ErrTransient    = errors.New("tmdb: upstream unavailable")

	ErrUnknownCategory = errors.New("tmdb: unknown category")
)

// Error wraps an underlying error with request context.
type Error struct {
	Op       string // "fetchCategory", "fetchDetails"
	Endpoint string
	Status   int // HTTP status, 0 for transport failures
	Err      error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("tmdb %s %s: status %d: %v", e.Op, e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("tmdb %s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// classifyStatus maps a non-2xx response to one of the sentinel errors.
func classifyStatus(status int) error {
	switch status {
	case 429:
		return ErrRateLimited
	case 401:
		return ErrUnauthorized
	case 404:
		return ErrNotFound
	default:
		return ErrTransient
	}
}

func wrapError(op, endpoint string, status int, err error) error {
	return &Error{Op: op, Endpoint: endpoint, Status: status, Err: err}
}
