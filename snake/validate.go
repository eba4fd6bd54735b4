package snake

import (
	"fmt"

	"github.com/katalvlaran/snakebox/hypercube"
	"github.com/katalvlaran/snakebox/transitions"
)

// Validate checks the defining snake property over an explicit vertex
// sequence and returns (valid, reason). The rules, checked in order:
//
//  1. Sequences shorter than two vertices are trivially valid.
//  2. Every consecutive pair must be at Hamming distance exactly 1.
//  3. Every non-consecutive pair (index distance >= 2) must be at Hamming
//     distance greater than 1.
//
// The reason names the offending index pair and the measured distance.
// Complexity: O(length²) bit operations; run once on final candidates.
func Validate(vertices []int) (bool, string) {
	n := len(vertices)
	if n < 2 {
		return true, "valid snake (trivial case)"
	}

	for i := 0; i < n-1; i++ {
		if d := hypercube.Hamming(vertices[i], vertices[i+1]); d != 1 {
			return false, fmt.Sprintf(
				"consecutive vertices %d and %d have Hamming distance %d, expected 1", i, i+1, d)
		}
	}

	for i := 2; i < n; i++ {
		for j := 0; j < i-1; j++ {
			if d := hypercube.Hamming(vertices[i], vertices[j]); d <= 1 {
				return false, fmt.Sprintf(
					"non-consecutive vertices %d and %d have Hamming distance %d, must be > 1", j, i, d)
			}
		}
	}

	return true, "valid snake"
}

// ValidateTransitions range-checks a transition sequence against dimension,
// converts it to vertices and applies Validate. Codec failures become an
// invalid outcome with the codec's reason, never an error.
func ValidateTransitions(seq []int, dimension int) (bool, string) {
	if len(seq) == 0 {
		return true, "valid snake (empty sequence)"
	}
	for i, tr := range seq {
		if tr < 0 || tr >= dimension {
			return false, fmt.Sprintf(
				"transition %d has value %d, must be in range [0, %d)", i, tr, dimension)
		}
	}

	vertices, err := transitions.ToVertices(seq, dimension)
	if err != nil {
		return false, fmt.Sprintf("invalid transition sequence: %v", err)
	}

	return Validate(vertices)
}

// ValidateHex parses the literature's hex format and validates the result,
// a convenience for checking published record strings.
func ValidateHex(hexString string, dimension int) (bool, string) {
	return ValidateTransitions(transitions.ParseHex(hexString), dimension)
}
