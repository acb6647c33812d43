package repository

import "errors"

var (
	// ErrNotFound is returned when no row matches the id.
	ErrNotFound = errors.New("record not found")
	// ErrStatusConflict is returned by a conditional status update when the row
	// no longer holds the expected status.
	ErrStatusConflict = errors.New("status changed concurrently")
)
