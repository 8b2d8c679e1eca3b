package domain

import "errors"

// Sentinel errors surfaced by the usecase layer and mapped to HTTP
// statuses at the transport edge.
var (
	// ErrNotFound signals a missing record.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate record (same content digest).
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation signals a malformed filter or request parameter.
	ErrValidation = errors.New("validation failed")
	// ErrUnrecognizedQuery signals a natural-language query outside the
	// recognized grammar.
	ErrUnrecognizedQuery = errors.New("unrecognized query")
)
