// Package priming grows known snakes into higher dimensions one cube at a
// time.
//
// What:
//
//   - Prime reinterprets a snake from Q_n inside Q_{n+1}. The marking
//     policy of snake.Node leaves every vertex of the untouched coordinate
//     open, so half the larger cube is free space the seed can grow into.
//     A seeded breadth-first search then hunts for a strictly longer
//     snake, and the increment repeats until the target dimension or the
//     first dead end.
//   - DefaultSeedStrategy emits prefix lengths of the seed to try as
//     alternative starting points; a snake whose head is walled in can
//     often extend from an earlier vertex.
//
// Why:
//
// Direct search from the empty snake collapses under pruning pressure
// beyond middling dimensions. Starting from a known long snake skips the
// exhausted part of the tree and spends the whole budget on the frontier
// that matters.
//
// High dimensions (threshold 14 by default) get longer level caps, more
// stall patience, a doubled memory budget and aggressive prefix
// backtracking when the frontier runs dry.
//
// Errors:
//
//   - ErrTarget: target dimension < 1.
//   - ErrSeed: seed sequence with out-of-range transitions.
//   - ErrOptionViolation: an out-of-range option value.
//
// Failing to extend is not an error: the Result reports Extended=false and
// carries the best snake reached, at worst the seed itself.
package priming
