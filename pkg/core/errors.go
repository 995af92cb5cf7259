package core

import "errors"

// Common errors.
var (
	ErrBadPattern = errors.New("invalid match pattern")
)
