// Package transitions converts between the two encodings of a snake path
// and the literature's textual format.
//
// What:
//
//   - A transition sequence lists the bit position flipped at each step,
//     starting from vertex 0. A vertex sequence lists the visited labels
//     explicitly. FromVertices and ToVertices convert between them.
//   - CurrentVertex folds a transition sequence to the snake's head label.
//   - Dimension infers the smallest hypercube that contains a sequence.
//   - ParseHex / FormatHex speak the hex-digit format used by published
//     snake records (digits 0-9 and a-f encode transition values 0-15).
//
// Why:
//
//   - The search works on transition sequences (compact, canonical-form
//     friendly); validation and interchange work on vertex sequences.
//
// Complexity: all conversions are O(length), single pass.
//
// Errors:
//
//   - ErrDuplicateVertex: consecutive vertices are identical (XOR = 0).
//   - ErrMultiBit: consecutive vertices differ in more than one bit.
//   - ErrTransitionRange: transition value outside [0, dimension).
//   - ErrNotHex: FormatHex given a value outside [0, 15].
//
// ParseHex is deliberately permissive: any character that is not a hex
// digit (commas, whitespace, line breaks) is skipped, matching how record
// sequences are printed in the literature's appendices.
package transitions
