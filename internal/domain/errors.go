package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrProfileIncomplete means personality or role is missing and the user
	// must be sent back to onboarding.
	ErrProfileIncomplete = errors.New("profile incomplete: personality type and role are required")

	ErrInvalidPersonality = errors.New("invalid personality type")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidMonth       = errors.New("month must be between 1 and 12")
	ErrInvalidDate        = errors.New("invalid date")
)

// ValidationError reports which field failed and wraps the sentinel.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
