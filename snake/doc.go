// Package snake provides the search node of the snake-in-the-box tree and
// the strict validator for finished sequences.
//
// What:
//
//   - Node couples a transition sequence with its derived occupancy bitmap
//     and fitness (free-vertex count). Nodes are immutable: extension
//     always creates a new Node, never mutates one in place.
//   - Validate / ValidateTransitions check the defining snake property
//     over a vertex sequence: consecutive vertices at Hamming distance
//     exactly 1, non-consecutive vertices at distance greater than 1.
//
// The used-dimensions marking policy:
//
//	When a Node replays its sequence, every visited vertex is marked
//	occupied, and every visited vertex except the head also closes its
//	neighbors along the dimensions the sequence uses anywhere (not along
//	all n dimensions). The head's neighbors stay open because they are
//	the extension candidates; they close when a child retires the head.
//	A lower-dimensional snake embedded in a higher cube stays open in the
//	dimensions it has not touched yet, which is what makes priming
//	possible. Finished sequences must still pass Validate, whose Hamming
//	rules are dimension-agnostic and authoritative.
//
// Complexity:
//
//   - NewNode: O(length × used-dimensions + 2^n/64).
//   - CanExtend: O(1) after the cached head lookup.
//   - CreateChild: O(2^n/64) when reusing an already-used dimension
//     (copy-and-extend), full replay when introducing a new one.
//   - Validate: O(length²) bit operations; it runs once per final
//     candidate, not per search step.
//
// Errors:
//
//   - ErrDimension: node constructed with dimension < 1.
//   - ErrTransitionRange: a transition value outside [0, dimension).
//   - ErrCannotExtend: child requested for a blocked or out-of-range
//     dimension. During search this is expected and frequent; engines
//     precheck with CanExtend and treat it as control flow, not failure.
//
// Validator outcomes are data, not faults: Validate always returns
// (bool, reason) and never fails the process.
package snake
