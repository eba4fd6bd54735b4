package snake

import "errors"

// Sentinel errors for node construction and extension.
var (
	// ErrDimension indicates a node dimension below 1.
	ErrDimension = errors.New("snake: dimension must be >= 1")
	// ErrTransitionRange indicates a transition value outside [0, dimension).
	ErrTransitionRange = errors.New("snake: transition out of range")
	// ErrCannotExtend indicates an infeasible extension: the target vertex
	// is already marked or the dimension is out of range.
	ErrCannotExtend = errors.New("snake: extension infeasible")
)
