package graphgen

import "errors"

// ErrInvalidDimensions is returned by Grid for a non-positive row or
// column count.
var ErrInvalidDimensions = errors.New("graphgen: invalid dimensions")

// ErrInvalidDensity is returned by RandomSparse for a density outside
// [0, 1].
var ErrInvalidDensity = errors.New("graphgen: invalid edge density")
