package books

import "errors"

var (
	// ErrNotFound is returned by Save when the book carries an ID that is not stored.
	ErrNotFound = errors.New("book not found")

	// ErrInvalidArgument is returned for malformed filter input.
	ErrInvalidArgument = errors.New("invalid argument")
)
