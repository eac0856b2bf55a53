package binding

import "errors"

// Configuration errors that can be checked with errors.Is(). Digest
// mismatches and malformed stored digests are reported as a false
// verification result, never as an error.
var (
	// ErrUnsupportedAlgorithm indicates an unknown digest algorithm value.
	ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")

	// ErrUnsupportedEncoding indicates an unknown digest encoding value.
	ErrUnsupportedEncoding = errors.New("unsupported digest encoding")
)
