package binding

import "errors"

var (
	// ErrMissingInput is returned when the host is neither a field nor a
	// component nesting one. It is wrapped in a *session.ConfigError.
	ErrMissingInput = errors.New("binding: mask element must contain an input element")

	// ErrUnbound is returned when updating a detached binding.
	ErrUnbound = errors.New("binding: field is not bound")
)
