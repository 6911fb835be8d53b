package service

import (
	"errors"
	"fmt"
)

// Business rule errors. They are always wrapped with context (ids, reasons), use errors.Is to check them.
var (
	// ErrUnauthorized is returned when the operation requires an authenticated actor.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the actor lacks role or relation required for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound ...
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a required field is missing or malformed.
	ErrValidation = errors.New("validation error")
	// ErrInvalidAction is returned for unrecognized action tags.
	ErrInvalidAction = fmt.Errorf("%w: invalid action", ErrValidation)
	// ErrInvalidState is returned when the entity's status forbids the transition.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidDate ...
	ErrInvalidDate = errors.New("invalid date")
	// ErrConflict is returned when a uniqueness constraint would be violated.
	ErrConflict = errors.New("already exists")
	// ErrFull is returned when the event reached its attendees limit.
	ErrFull = errors.New("full")
)

// IsBusinessError returns true if err is one of business rule errors.
// Other errors are internal failures.
func IsBusinessError(err error) bool {
	for _, v := range []error{
		ErrUnauthorized, ErrForbidden, ErrNotFound, ErrValidation, ErrInvalidState, ErrInvalidDate, ErrConflict, ErrFull,
	} {
		if errors.Is(err, v) {
			return true
		}
	}

	return false
}
