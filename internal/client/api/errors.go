package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: the request never
// produced an HTTP response (connection refused, DNS, timeout).
var ErrUnavailable = errors.New("server unavailable")

// Error is an application-level failure: the server answered with an
// error status and, usually, an {error: "..."} body.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}
