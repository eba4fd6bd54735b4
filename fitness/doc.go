// Package fitness scores search nodes for frontier pruning.
//
// What:
//
//   - Evaluator is the pluggable ranking contract of the BFS engine: any
//     scorer can be swapped in without touching the engine's control flow.
//   - Simple scores a node by its cached free-vertex count, the measure
//     that produced the record results; it costs nothing per node.
//   - Advanced adds two structural measures of the free subgraph and a
//     weighted combination:
//     DeadEnds - free vertices with exactly one free neighbor, traps that
//     end the snake once entered;
//     Unreachable - free vertices cut off from the snake's head, pockets
//     the path can never use. A high count means the node has fragmented
//     its free space.
//
// Why:
//
//	Under a memory budget the engine keeps only the highest-scoring
//	children. The score is the sole lever deciding which subtrees
//	survive, so it must be cheap for the default and honest about
//	structure when a caller opts into the advanced measures.
//
// Complexity:
//
//   - Simple.Score: O(1), reads the cached count.
//   - DeadEnds: O(2^n × n).
//   - Unreachable: O(2^n × n) flood fill over the free subgraph.
package fitness
