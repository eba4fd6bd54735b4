package fitness

import "github.com/katalvlaran/snakebox/snake"

// Evaluator ranks search nodes; higher scores survive pruning longer.
type Evaluator interface {
	Score(n *snake.Node) float64
}

// Simple scores a node by its cached free-vertex count. This is the
// measure behind the published record results; it is already computed at
// node construction, so scoring is free.
type Simple struct{}

// Score returns the node's free-vertex count.
func (Simple) Score(n *snake.Node) float64 { return float64(n.Fitness()) }

// Weights combines the advanced measures into one score. Negative weights
// penalize undesirable structure.
type Weights struct {
	// Free weights the free-vertex count.
	Free float64
	// DeadEnds weights the count of one-exit free vertices.
	DeadEnds float64
	// Unreachable weights the count of free vertices cut off from the head.
	Unreachable float64
}

// DefaultWeights favors free space and mildly penalizes dead ends, the
// combination used when no caller-supplied weights are given.
func DefaultWeights() Weights {
	return Weights{Free: 1.0, DeadEnds: -0.5, Unreachable: 0}
}

// Advanced scores nodes by a weighted sum of the structural measures.
// The zero value uses DefaultWeights.
type Advanced struct {
	Weights Weights
}

// Score returns Weights.Free*free + Weights.DeadEnds*deadEnds +
// Weights.Unreachable*unreachable, skipping the flood fill when its
// weight is zero.
func (a Advanced) Score(n *snake.Node) float64 {
	w := a.Weights
	if w == (Weights{}) {
		w = DefaultWeights()
	}

	score := w.Free * float64(n.Fitness())
	if w.DeadEnds != 0 {
		score += w.DeadEnds * float64(DeadEnds(n))
	}
	if w.Unreachable != 0 {
		score += w.Unreachable * float64(Unreachable(n))
	}

	return score
}

// DeadEnds counts free vertices with exactly one free neighbor across all
// n dimensions. Such a vertex can be entered but never left, so every
// dead end caps the snake's growth.
// Complexity: O(2^n × n).
func DeadEnds(n *snake.Node) int {
	dim := n.Dimension()
	total := 1 << uint(dim)

	deadEnds := 0
	for v := 0; v < total; v++ {
		if marked, _ := n.Marked(v); marked {
			continue
		}
		freeNeighbors := 0
		for d := 0; d < dim; d++ {
			if marked, _ := n.Marked(v ^ (1 << uint(d))); !marked {
				freeNeighbors++
			}
		}
		if freeNeighbors == 1 {
			deadEnds++
		}
	}

	return deadEnds
}

// Unreachable counts free vertices that no path of free vertices connects
// to the snake's head. The flood fill seeds at the head's free neighbors
// (the head itself is occupied) and walks hypercube edges between free
// vertices only.
// Complexity: O(2^n × n).
func Unreachable(n *snake.Node) int {
	dim := n.Dimension()
	head := n.CurrentVertex()

	seen := make([]bool, 1<<uint(dim))
	queue := make([]int, 0, dim)
	for d := 0; d < dim; d++ {
		v := head ^ (1 << uint(d))
		if marked, _ := n.Marked(v); !marked && !seen[v] {
			seen[v] = true
			queue = append(queue, v)
		}
	}

	reachable := 0
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		reachable++

		for d := 0; d < dim; d++ {
			nb := v ^ (1 << uint(d))
			if seen[nb] {
				continue
			}
			if marked, _ := n.Marked(nb); !marked {
				seen[nb] = true
				queue = append(queue, nb)
			}
		}
	}

	return n.Fitness() - reachable
}
