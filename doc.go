// Package snakebox searches for long induced paths ("snakes") in the
// n-dimensional hypercube graph - the snake-in-the-box problem - using a
// heuristically-pruned breadth-first search and a priming strategy that
// pushes known long snakes into higher dimensions.
//
// 🐍 What is snakebox?
//
//	A pure-Go toolkit for the snake-in-the-box problem:
//		• Vertex bitmaps: popcount-friendly occupancy over 2^n vertices
//		• Transition ⇄ vertex codecs, plus the literature's hex format
//		• Snake validation: the strict Hamming-distance rules
//		• Canonical form: symmetry pruning over hypercube automorphisms
//		• Pruned BFS: level-synchronous search under a memory budget
//		• Priming: seeded extension of a dimension-d snake into d+1
//		• Parallel frontier expansion for multi-core machines
//
// ✨ Why choose snakebox?
//
//   - Small API – sequences in, sequences out, explicit outcome structs
//   - Tunable – every heuristic threshold is an option with a sane default
//   - Pure Go – bit tricks over []uint64 words, no cgo
//   - Extensible – swappable fitness evaluators, progress hooks per level
//
// Package map:
//
//	hypercube/   - vertex bitmap & Hamming distance
//	transitions/ - transition/vertex codec + hex serialization
//	canonical/   - canonical-form filter for symmetry reduction
//	snake/       - search node & snake validator
//	fitness/     - pluggable node scoring (free count, dead ends, pockets)
//	search/      - pruned BFS engine, sequential & parallel
//	priming/     - seeded extension into higher dimensions
//	records/     - known-record lookup table (injectable)
//	solve/       - one-call dispatcher: known → search → priming
//
// Quick ASCII example, the optimum snake of Q3 (transitions 0120):
//
//	    6───7
//	   /   /│
//	  4───5 3
//	  │   │/
//	  0───1
//
//	visits 0→1→3→7→6: consecutive vertices differ in one bit, and no
//	other pair of visited vertices is adjacent in the cube.
//
//	go get github.com/katalvlaran/snakebox
package snakebox
