// Package errs contains sentinel errors shared between the repository and
// service layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a unique constraint violation
	// (e.g. username taken).
	ErrAlreadyExists = errors.New("already exists")
)
