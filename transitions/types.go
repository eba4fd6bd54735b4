package transitions

import "errors"

// Sentinel errors for codec conversions.
var (
	// ErrDuplicateVertex indicates two identical consecutive vertices.
	ErrDuplicateVertex = errors.New("transitions: consecutive vertices are identical")
	// ErrMultiBit indicates consecutive vertices differing in multiple bits.
	ErrMultiBit = errors.New("transitions: consecutive vertices differ in multiple bits")
	// ErrTransitionRange indicates a transition value outside [0, dimension).
	ErrTransitionRange = errors.New("transitions: transition out of range")
	// ErrNotHex indicates a transition value that has no hex-digit encoding.
	ErrNotHex = errors.New("transitions: value not encodable as a hex digit")
)
