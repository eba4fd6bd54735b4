package transitions

import (
	"fmt"
	"strings"
)

const hexDigits = "0123456789abcdef"

// ParseHex extracts a transition sequence from the literature's hex format:
// digits 0-9 and a-f (case-insensitive) map to transition values 0-15.
// Every other character - commas, whitespace, line breaks - is silently
// skipped; the parser is lossy and permissive by design, matching how
// record sequences are printed in appendices.
// Complexity: O(len(s)).
func ParseHex(s string) []int {
	seq := make([]int, 0, len(s))
	for _, r := range strings.ToLower(s) {
		if idx := strings.IndexRune(hexDigits, r); idx >= 0 {
			seq = append(seq, idx)
		}
	}

	return seq
}

// FormatHex renders a transition sequence in the same hex format ParseHex
// reads, one digit per transition.
// Returns ErrNotHex when a value falls outside [0, 15].
func FormatHex(seq []int) (string, error) {
	var sb strings.Builder
	sb.Grow(len(seq))
	for i, tr := range seq {
		if tr < 0 || tr > 15 {
			return "", fmt.Errorf("%w: transition %d has value %d", ErrNotHex, i, tr)
		}
		sb.WriteByte(hexDigits[tr])
	}

	return sb.String(), nil
}
