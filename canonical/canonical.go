package canonical

import "sort"

// IsCanonical reports whether seq follows the canonical form: the first
// transition is 0 and every subsequent value is at most one more than the
// maximum value seen before it. The empty sequence is canonical.
// Complexity: O(length).
func IsCanonical(seq []int) bool {
	if len(seq) == 0 {
		return true
	}
	if seq[0] != 0 {
		return false
	}

	maxDim := 0
	for _, dim := range seq {
		if dim > maxDim+1 {
			return false
		}
		if dim == maxDim+1 {
			maxDim = dim
		}
	}

	return true
}

// LegalNextDimensions returns, in ascending order, the transition values
// that keep an extension of seq canonical: {0} for the empty sequence,
// otherwise every distinct dimension already used plus max_used+1.
// Values are not capped by any hypercube dimension; the caller's
// feasibility check rejects values at or above its dimension.
// Complexity: O(length + k log k) for k distinct dimensions.
func LegalNextDimensions(seq []int) []int {
	if len(seq) == 0 {
		return []int{0}
	}

	used := make(map[int]struct{}, len(seq))
	maxDim := seq[0]
	for _, dim := range seq {
		used[dim] = struct{}{}
		if dim > maxDim {
			maxDim = dim
		}
	}

	legal := make([]int, 0, len(used)+1)
	for dim := range used {
		legal = append(legal, dim)
	}
	legal = append(legal, maxDim+1)
	sort.Ints(legal)

	return legal
}
