package hypercube

import (
	"fmt"
	"math/bits"
)

// Bitmap tracks the state of every vertex of Q_n in packed 64-bit words.
// Bit=1 means occupied or prohibited, bit=0 means free. A Bitmap is owned
// by exactly one search node; it supports no concurrent mutation.
type Bitmap struct {
	dimension   int
	numVertices int
	words       []uint64
}

// NewBitmap allocates a zeroed bitmap for the 2^dimension vertices of Q_n.
// Returns ErrDimension if dimension < 1.
// Complexity: O(2^n / 64) for the zeroed allocation.
func NewBitmap(dimension int) (*Bitmap, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dimension)
	}
	n := 1 << dimension

	return &Bitmap{
		dimension:   dimension,
		numVertices: n,
		words:       make([]uint64, (n+WordBits-1)/WordBits),
	}, nil
}

// Dimension returns the hypercube dimension n.
func (b *Bitmap) Dimension() int { return b.dimension }

// NumVertices returns 2^n, the number of tracked vertices.
func (b *Bitmap) NumVertices() int { return b.numVertices }

// Words returns the number of 64-bit storage words.
func (b *Bitmap) Words() int { return len(b.words) }

// Set marks vertex as occupied/prohibited.
// Returns ErrVertexRange if vertex is outside [0, 2^n).
func (b *Bitmap) Set(vertex int) error {
	if vertex < 0 || vertex >= b.numVertices {
		return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrVertexRange, vertex, b.numVertices)
	}
	b.words[vertex>>6] |= 1 << uint(vertex&63)

	return nil
}

// Clear unmarks vertex.
// Returns ErrVertexRange if vertex is outside [0, 2^n).
func (b *Bitmap) Clear(vertex int) error {
	if vertex < 0 || vertex >= b.numVertices {
		return fmt.Errorf("%w: vertex %d not in [0, %d)", ErrVertexRange, vertex, b.numVertices)
	}
	b.words[vertex>>6] &^= 1 << uint(vertex&63)

	return nil
}

// Get reports whether vertex is marked.
// Returns ErrVertexRange if vertex is outside [0, 2^n).
func (b *Bitmap) Get(vertex int) (bool, error) {
	if vertex < 0 || vertex >= b.numVertices {
		return false, fmt.Errorf("%w: vertex %d not in [0, %d)", ErrVertexRange, vertex, b.numVertices)
	}

	return b.words[vertex>>6]&(1<<uint(vertex&63)) != 0, nil
}

// CountFree returns the number of unmarked vertices, the fitness measure of
// a search node. Complexity: O(words) via population count per word.
func (b *Bitmap) CountFree() int {
	marked := 0
	for _, w := range b.words {
		marked += bits.OnesCount64(w)
	}

	return b.numVertices - marked
}

// Clone produces an independent copy: value semantics, no shared words.
func (b *Bitmap) Clone() *Bitmap {
	words := make([]uint64, len(b.words))
	copy(words, b.words)

	return &Bitmap{
		dimension:   b.dimension,
		numVertices: b.numVertices,
		words:       words,
	}
}
