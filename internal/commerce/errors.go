package commerce

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNotConfigured is returned by the unconfigured client variants when an
// operation has no meaningful empty result.
var ErrNotConfigured = errors.New("commerce backend not configured")

// APIError is a non-2xx answer from the commerce backend.
type APIError struct {
	Op      string
	Status  int
	Type    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: backend status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: backend status %d: %s", e.Op, e.Status, e.Message)
}

func statusOf(err error) int {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.Status
	}
	return 0
}

// IsUnauthorized distinguishes "not logged in" from a failing backend.
func IsUnauthorized(err error) bool {
	return statusOf(err) == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	return statusOf(err) == http.StatusNotFound
}

func IsConflict(err error) bool {
	return statusOf(err) == http.StatusConflict
}

// IsAlreadyExists matches the identity and customer duplicate answers. The
// backend reports a duplicate identity as 401 so the message is what counts.
func IsAlreadyExists(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return strings.Contains(strings.ToLower(ae.Message), "already exists")
}

// Message returns the backend's message when err carries one.
func Message(err error) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
