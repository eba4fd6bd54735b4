package snake

import (
	"fmt"

	"github.com/katalvlaran/snakebox/hypercube"
)

// Node is one node of the search tree: a snake as a transition sequence,
// the occupancy bitmap derived from it, and the cached fitness score.
// A Node is immutable after construction and exclusively owns its bitmap.
type Node struct {
	seq       []int
	dimension int
	usedMask  uint64 // dimensions appearing anywhere in seq
	current   int    // head vertex, XOR-fold of seq
	bitmap    *hypercube.Bitmap
	fitness   int
}

// NewNode builds a node for seq inside Q_dimension, replaying the sequence
// from vertex 0. Every visited vertex is marked occupied; every visited
// vertex except the head additionally closes its neighbors along the
// dimensions the sequence uses anywhere. The head's own neighbors stay
// open (they are exactly the candidate extension targets) and close
// when a child retires the head. Dimensions the sequence never uses stay
// open everywhere (see the package doc). The input slice is copied.
// Returns ErrDimension if dimension < 1 and ErrTransitionRange if any
// transition falls outside [0, dimension).
func NewNode(seq []int, dimension int) (*Node, error) {
	if dimension < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, dimension)
	}
	var usedMask uint64
	for i, tr := range seq {
		if tr < 0 || tr >= dimension {
			return nil, fmt.Errorf("%w: transition %d has value %d, not in [0, %d)",
				ErrTransitionRange, i, tr, dimension)
		}
		usedMask |= 1 << uint(tr)
	}

	bm, err := hypercube.NewBitmap(dimension)
	if err != nil {
		return nil, err
	}

	n := &Node{
		seq:       append([]int{}, seq...),
		dimension: dimension,
		usedMask:  usedMask,
		bitmap:    bm,
	}

	// Replay from the origin. All visited vertices and their single-bit
	// neighbors stay inside [0, 2^n) because transitions are range-checked,
	// so bitmap errors cannot occur here.
	current := 0
	for _, tr := range n.seq {
		_ = bm.Set(current)
		n.closeNeighbors(current)
		current ^= 1 << uint(tr)
	}
	_ = bm.Set(current) // the head is occupied, its neighbors stay open
	n.current = current
	n.fitness = bm.CountFree()

	return n, nil
}

// closeNeighbors marks the neighbors of v along every used dimension.
// Called for every visited vertex except the current head.
func (n *Node) closeNeighbors(v int) {
	for d := 0; d < n.dimension; d++ {
		if n.usedMask&(1<<uint(d)) != 0 {
			_ = n.bitmap.Set(v ^ (1 << uint(d)))
		}
	}
}

// Sequence returns a copy of the node's transition sequence.
func (n *Node) Sequence() []int { return append([]int{}, n.seq...) }

// Length returns the number of transitions, i.e. the snake's edge count.
func (n *Node) Length() int { return len(n.seq) }

// Dimension returns the hypercube dimension the node lives in.
func (n *Node) Dimension() int { return n.dimension }

// Fitness returns the cached free-vertex count of the node's bitmap.
func (n *Node) Fitness() int { return n.fitness }

// CurrentVertex returns the snake's head, the vertex reached by the last
// transition (the origin for an empty sequence).
func (n *Node) CurrentVertex() int { return n.current }

// Marked reports whether vertex is occupied or prohibited in the node's
// bitmap. Returns hypercube.ErrVertexRange outside [0, 2^n).
func (n *Node) Marked(vertex int) (bool, error) { return n.bitmap.Get(vertex) }

// CanExtend reports whether the snake can grow along dim: dim must lie in
// [0, dimension) and the vertex reached by flipping that bit from the head
// must be unmarked.
func (n *Node) CanExtend(dim int) bool {
	if dim < 0 || dim >= n.dimension {
		return false
	}
	marked, _ := n.bitmap.Get(n.current ^ (1 << uint(dim)))

	return !marked
}

// CreateChild returns a new node whose sequence is the parent's plus dim.
// Returns ErrCannotExtend when CanExtend(dim) is false. When dim is already
// used by the parent, the child copy-and-extends the parent's bitmap: the
// retiring head closes its neighbors and the new head is marked. A newly
// introduced dimension changes the used set, forcing a full replay.
func (n *Node) CreateChild(dim int) (*Node, error) {
	if !n.CanExtend(dim) {
		return nil, fmt.Errorf("%w: dimension %d from vertex %d", ErrCannotExtend, dim, n.current)
	}

	childSeq := make([]int, len(n.seq)+1)
	copy(childSeq, n.seq)
	childSeq[len(n.seq)] = dim

	if n.usedMask&(1<<uint(dim)) == 0 {
		return NewNode(childSeq, n.dimension)
	}

	child := &Node{
		seq:       childSeq,
		dimension: n.dimension,
		usedMask:  n.usedMask,
		current:   n.current ^ (1 << uint(dim)),
		bitmap:    n.bitmap.Clone(),
	}
	child.closeNeighbors(n.current)
	_ = child.bitmap.Set(child.current)
	child.fitness = child.bitmap.CountFree()

	return child, nil
}

// String renders a compact summary for logs and test failures.
func (n *Node) String() string {
	return fmt.Sprintf("snake.Node(dim=%d, len=%d, fit=%d)", n.dimension, len(n.seq), n.fitness)
}
