package internal

import "errors"

var (
	// ErrNotFound means no link exists for the requested code.
	ErrNotFound = errors.New("link not found")
	// ErrCodeTaken means an insert hit the unique index on code.
	ErrCodeTaken = errors.New("code already exists")
	// ErrCodeSpaceExhausted means allocation gave up after escalating
	// through all permitted code lengths.
	ErrCodeSpaceExhausted = errors.New("could not allocate a free code")
)
