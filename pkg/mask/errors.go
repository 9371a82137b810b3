package mask

import "errors"

// ErrEmptyMask is returned when a mask pattern is empty.
var ErrEmptyMask = errors.New("mask: pattern is empty")
