package tokgrid

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidConfig indicates a rejected tokenizer configuration, such as
	// an empty separator list or a stray empty separator string.
	ErrInvalidConfig = errors.New("tokgrid: invalid configuration")

	// ErrInvalidShape indicates an input shape that is not rank 1 or 2, or
	// has a non-positive dimension.
	ErrInvalidShape = errors.New("tokgrid: invalid input shape")

	// ErrInvalidType indicates an input tensor whose elements are not strings.
	ErrInvalidType = errors.New("tokgrid: invalid input element type")

	// ErrInvalidUTF8 indicates a separator or input cell that is not valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("tokgrid: invalid utf-8")
)
