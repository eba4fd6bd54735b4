// Package hypercube provides the vertex-level primitives for the
// snake-in-the-box search: a packed occupancy bitmap over the 2^n vertices
// of the hypercube Q_n, and the Hamming distance between vertex labels.
//
// What:
//
//   - Bitmap marks vertices as occupied/prohibited (bit=1) or free (bit=0),
//     packed into 64-bit words. One bitmap per search node, single-owner.
//   - CountFree is the search's fitness primitive: population count over
//     words, never a per-vertex loop.
//   - Hamming(a, b) is the number of differing bits between two labels.
//
// Why:
//
//   - A node in the search tree must answer "is this vertex blocked?" and
//     "how many vertices remain free?" millions of times per level; both
//     must be branch-light word operations.
//
// Complexity:
//
//   - Set / Clear / Get: O(1).
//   - CountFree: O(2^n / 64) via math/bits.OnesCount64.
//   - Clone: O(2^n / 64).
//
// Errors:
//
//   - ErrDimension: constructor called with dimension < 1.
//   - ErrVertexRange: vertex index outside [0, 2^dimension).
package hypercube
