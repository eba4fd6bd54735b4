// Package hypercube defines sentinel errors and storage constants for the
// vertex bitmap.
package hypercube

import "errors"

// WordBits is the width of one storage word of the bitmap.
const WordBits = 64

// Sentinel errors for bitmap operations.
var (
	// ErrDimension indicates a hypercube dimension below 1.
	ErrDimension = errors.New("hypercube: dimension must be >= 1")
	// ErrVertexRange indicates a vertex index outside [0, 2^dimension).
	ErrVertexRange = errors.New("hypercube: vertex index out of range")
)
