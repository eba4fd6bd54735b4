// Package canonical implements Kochut's canonical form for transition
// sequences, the symmetry-reduction rule of the snake-in-the-box search.
//
// What:
//
//	The hypercube Q_n has 2^n * n! automorphisms (coordinate permutations
//	and axis negations), so every snake has a large class of isomorphic
//	twins. The canonical representative of a class is the sequence whose
//	first transition is 0 and which never introduces a new dimension out
//	of order: each value is at most one more than the maximum seen so far.
//
// Why:
//
//	Restricting the search to canonical sequences explores exactly one
//	snake per equivalence class, shrinking the tree by orders of magnitude
//	without losing any length.
//
// Operations:
//
//   - IsCanonical reports whether a sequence is the representative.
//   - LegalNextDimensions lists the transition values that keep an
//     extension canonical: every dimension already used, plus the single
//     next unused one.
//
// Complexity: both are O(length).
package canonical
