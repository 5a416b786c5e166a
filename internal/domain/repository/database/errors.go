package database

import "errors"

var (
	// ErrNotFound is returned when no document matches the query.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("document already exists")
)
