package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// saved itinerary does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing trip name, unknown transport mode).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrBusy is returned when a generation request arrives while another one is
// still in flight for the same session. There is no queueing and no
// cancellation: the caller must wait and resubmit.
// Handlers should map this to HTTP 409 Conflict.
var ErrBusy = errors.New("generation already in progress")

// ErrGeneration is returned when the AI collaborator fails or returns an
// empty description. The attempt is terminal; nothing is retried.
// Handlers should map this to HTTP 502 Bad Gateway.
var ErrGeneration = errors.New("generation failed")

// ValidationError reports which required trip fields were missing.
// It unwraps to ErrValidation so callers can use errors.Is without caring
// about the structured detail.
type ValidationError struct {
	MissingName        bool
	MissingStart       bool
	MissingDestination bool
}

// Missing returns the machine-readable field names that failed, in a fixed
// order suitable for API responses.
func (e *ValidationError) Missing() []string {
	var out []string
	if e.MissingName {
		out = append(out, "name")
	}
	if e.MissingStart {
		out = append(out, "start")
	}
	if e.MissingDestination {
		out = append(out, "destination")
	}
	return out
}

func (e *ValidationError) Error() string {
	return "validation error: missing " + strings.Join(e.Missing(), ", ")
}

// Unwrap makes errors.Is(err, ErrValidation) hold for *ValidationError.
func (e *ValidationError) Unwrap() error { return ErrValidation }
