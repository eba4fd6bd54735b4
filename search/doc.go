// Package search implements the heuristically pruned breadth-first snake
// search over hypercube transition sequences.
//
// What:
//
//   - Search: level-synchronous BFS from the empty snake. Each level the
//     frontier is expanded through the canonical legal dimensions, the
//     first strictly longer child becomes the best answer so far, and the
//     frontier is cut by fitness whenever its estimated byte footprint
//     exceeds the memory budget.
//   - SearchParallel: the same engine with per-level expansion spread over
//     a worker pool; chunk-ordered concatenation keeps pruning aligned
//     with the sequential run.
//   - Options tune the memory budget, per-node overhead, level cap, worker
//     count, pruning evaluator and progress hooks.
//
// Why:
//
// Exhaustive BFS drowns in nodes beyond small dimensions. The pruned
// variant trades completeness for reach: it keeps the most promising slice
// of every level and still recovers known-optimal snakes in the dimensions
// where the full tree fits under the budget.
//
// Complexity:
//
// Per level O(F × n) extensions and O(F log F) for a pruning sort, with F
// the frontier size after the cut, F <= MemoryLimitBytes / node size.
//
// Errors:
//
//   - ErrDimension: dimension < 1.
//   - ErrOptionViolation: an out-of-range option value.
//
// An exhausted frontier is a result, never an error; the longest snake
// seen on the way down is the answer.
package search
