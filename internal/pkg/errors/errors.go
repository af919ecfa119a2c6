package errors

import "errors"

var (
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned for ids or options a lookup cannot use.
	ErrInvalidArgument = errors.New("invalid argument")
)
