package pattern

import "errors"

// Configuration errors that can be checked with errors.Is().
var (
	// ErrInvalidTemplate indicates a malformed template label: empty, or
	// containing characters outside the letters A-Z (case-insensitive).
	ErrInvalidTemplate = errors.New("invalid template")

	// ErrInvalidAlphabet indicates an alphabet with fewer than two symbols
	// or with duplicate symbols.
	ErrInvalidAlphabet = errors.New("invalid alphabet")

	// ErrInvalidTemplatePool indicates an empty template pool.
	ErrInvalidTemplatePool = errors.New("invalid template pool")
)
