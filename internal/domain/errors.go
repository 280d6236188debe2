package domain

import "errors"

var (
	// ErrTransport reports that a feed request could not complete or
	// returned a non-success status.
	ErrTransport = errors.New("feed transport failure")

	// ErrMalformed reports that a feed response did not match the expected shape.
	ErrMalformed = errors.New("malformed feed response")
)
