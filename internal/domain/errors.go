package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrEventNotFound   = errors.New("event not found")
)

var (
	ErrUnauthorized = errors.New("authentication failed")
	ErrNotOwner     = errors.New("you are not the owner of this event")
)

var (
	ErrValidation = errors.New("validation error")
)

// ErrAPIUnavailable covers transport-level failures talking to the platform
// API. The user sees a generic message; the cause stays in the logs.
var ErrAPIUnavailable = errors.New("event platform is unreachable")

// APIError is a structured rejection from the platform API. Detail is shown
// to the user verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api rejected request (%d): %s", e.StatusCode, e.Detail)
}
