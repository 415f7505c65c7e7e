package domain

import "errors"

var (
	// ErrInvalidArgument marks input that cannot be translated into a query.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound is returned when a persisted resource does not exist.
	ErrNotFound = errors.New("not found")
)
