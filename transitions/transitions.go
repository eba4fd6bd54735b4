package transitions

import (
	"fmt"
	"math/bits"
)

// FromVertices converts an explicit vertex sequence into the transition
// sequence of bit positions flipped between consecutive vertices.
// Sequences shorter than two vertices yield an empty transition sequence.
// Returns ErrDuplicateVertex when a consecutive pair is identical and
// ErrMultiBit when a pair differs in more than one bit, each reporting the
// offending index pair.
// Complexity: O(length).
func FromVertices(vertices []int) ([]int, error) {
	if len(vertices) < 2 {
		return []int{}, nil
	}

	seq := make([]int, 0, len(vertices)-1)
	for i := 0; i < len(vertices)-1; i++ {
		x := vertices[i] ^ vertices[i+1]
		if x == 0 {
			return nil, fmt.Errorf("%w: vertices %d and %d are both %d",
				ErrDuplicateVertex, i, i+1, vertices[i])
		}
		if x&(x-1) != 0 {
			return nil, fmt.Errorf("%w: vertices %d and %d (%b vs %b)",
				ErrMultiBit, i, i+1, vertices[i], vertices[i+1])
		}
		// x is a power of two; its trailing-zero count is the flipped bit.
		seq = append(seq, bits.TrailingZeros(uint(x)))
	}

	return seq, nil
}

// ToVertices replays a transition sequence from the origin (vertex 0) and
// returns the visited vertex labels, origin included.
// Returns ErrTransitionRange for any value outside [0, dimension).
// Complexity: O(length).
func ToVertices(seq []int, dimension int) ([]int, error) {
	return ToVerticesFrom(seq, dimension, 0)
}

// ToVerticesFrom replays a transition sequence from an arbitrary start
// vertex. The result has len(seq)+1 entries beginning with start.
// Returns ErrTransitionRange for any value outside [0, dimension).
func ToVerticesFrom(seq []int, dimension, start int) ([]int, error) {
	vertices := make([]int, 0, len(seq)+1)
	vertices = append(vertices, start)

	current := start
	for i, tr := range seq {
		if tr < 0 || tr >= dimension {
			return nil, fmt.Errorf("%w: transition %d has value %d, not in [0, %d)",
				ErrTransitionRange, i, tr, dimension)
		}
		current ^= 1 << uint(tr)
		vertices = append(vertices, current)
	}

	return vertices, nil
}

// CurrentVertex folds a transition sequence from the origin and returns the
// final vertex, the snake's head. No allocation.
// Complexity: O(length).
func CurrentVertex(seq []int) int {
	vertex := 0
	for _, tr := range seq {
		vertex ^= 1 << uint(tr)
	}

	return vertex
}

// Dimension returns the smallest hypercube dimension that contains seq:
// one more than the maximum transition value, or 1 for an empty sequence.
func Dimension(seq []int) int {
	if len(seq) == 0 {
		return 1
	}
	maxTr := seq[0]
	for _, tr := range seq[1:] {
		if tr > maxTr {
			maxTr = tr
		}
	}

	return maxTr + 1
}
