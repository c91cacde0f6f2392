package field

import "errors"

var (
	// ErrInvalidConfiguration reports a raster that cannot be normalized,
	// such as a zero height.
	ErrInvalidConfiguration = errors.New("field: invalid configuration")

	// ErrInvalidInput reports a non-finite time or coordinate.
	ErrInvalidInput = errors.New("field: invalid input")
)
