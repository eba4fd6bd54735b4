package hypercube

import "math/bits"

// Hamming returns the Hamming distance between two vertex labels: the
// number of bit positions where a and b differ. Two vertices of Q_n are
// adjacent exactly when their Hamming distance is 1.
// Complexity: O(1), a single XOR and population count.
func Hamming(a, b int) int {
	return bits.OnesCount(uint(a ^ b))
}
