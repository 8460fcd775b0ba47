package catalog

import (
	"errors"
	"fmt"
)

// NetworkError reports a transport failure or a non-success status on a remote resource.
type NetworkError struct {
	Op         string // "fetch collection", "fetch related resource", "fetch entity"
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

// Error returns a human-readable message suitable for display.
func (e *NetworkError) Error() string {
	failed := e.StatusCode != 0 && (e.StatusCode < 200 || e.StatusCode > 299)
	switch {
	case failed && e.Err != nil:
		return fmt.Sprintf("failed to %s: %s returned %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	case failed:
		return fmt.Sprintf("failed to %s: %s returned %d", e.Op, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("failed to %s", e.Op)
	}
}

// Unwrap returns the underlying cause.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetworkError reports whether err is or wraps a *NetworkError.
func IsNetworkError(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// ErrNotFound is returned by lookups that address no entity. Remote by-position
// lookups report absence as a nil entity instead.
var ErrNotFound = errors.New("entity not found")
