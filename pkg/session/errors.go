package session

import (
	"errors"
	"fmt"
)

var (
	// ErrMaskRequired is returned when a session is configured without a mask.
	ErrMaskRequired = errors.New("mask is required")

	// ErrParseIntMask is returned when integer parsing is requested for a mask
	// that can yield non-numeric values.
	ErrParseIntMask = errors.New("mask cannot be parsed as an integer")

	// ErrUnsupportedTarget is returned when unmask or integer parsing is
	// requested for a native field, which always reports its own text.
	ErrUnsupportedTarget = errors.New("option is not supported by a native field")
)

// ConfigError describes a configuration that cannot produce a session.
// It wraps one of the package sentinel errors, or a sentinel of the binding
// package when the host has no input.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("session: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func newConfigError(field string, err error) *ConfigError {
	return &ConfigError{Field: field, Err: err}
}

// IsConfigError reports whether err is a configuration error.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// ErrNoTransition indicates that an intent is not valid in the current state.
type ErrNoTransition struct {
	State  State
	Intent Intent
}

func (e *ErrNoTransition) Error() string {
	return fmt.Sprintf("no transition from state '%s' for intent '%s'", e.State, e.Intent)
}

// IsNoTransitionError reports whether err is an *ErrNoTransition.
func IsNoTransitionError(err error) bool {
	var e *ErrNoTransition
	return errors.As(err, &e)
}
