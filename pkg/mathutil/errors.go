package mathutil

import "errors"

var (
	// ErrLengthMismatch is returned when paired sequences differ in length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrUnsupportedEncoding is returned for an unknown quantization encoding.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
)
