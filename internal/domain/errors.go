package domain

import "errors"

var (
	// ErrInvalidInput marks caller-supplied data rejected at the boundary.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when a trip or day does not exist.
	ErrNotFound = errors.New("not found")
)
