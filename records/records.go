// Package records holds the published best-known snake lengths per
// dimension and the sequences that are short enough to carry inline.
// Callers inject a Table where they need one; nothing in the module reads
// a hidden global.
package records

// Record is one best-known result: the length, and the transition
// sequence when available. Higher-dimension records circulate as lengths
// only, so Sequence may be nil.
type Record struct {
	Sequence []int
	Length   int
}

// Table maps dimension to its best-known record.
type Table map[int]Record

// Length returns the best-known snake length for dimension.
func (t Table) Length(dimension int) (int, bool) {
	rec, ok := t[dimension]
	if !ok {
		return 0, false
	}

	return rec.Length, true
}

// Snake returns a copy of the recorded sequence and its length. ok is
// false when the dimension is unknown or only the length is on record.
func (t Table) Snake(dimension int) (seq []int, length int, ok bool) {
	rec, found := t[dimension]
	if !found || rec.Sequence == nil {
		return nil, 0, false
	}

	return append([]int{}, rec.Sequence...), rec.Length, true
}

// Default returns the published records for dimensions 1 through 13.
// Sequences are included through dimension 4; beyond that only the
// lengths are tabulated. Each call returns a fresh table safe to mutate.
func Default() Table {
	return Table{
		1:  {Sequence: []int{0}, Length: 1},
		2:  {Sequence: []int{0, 1}, Length: 2},
		3:  {Sequence: []int{0, 1, 2, 0}, Length: 4},
		4:  {Sequence: []int{0, 1, 2, 0, 3, 1, 0}, Length: 7},
		5:  {Length: 13},
		6:  {Length: 26},
		7:  {Length: 50},
		8:  {Length: 98},
		9:  {Length: 190},
		10: {Length: 370},
		11: {Length: 712},
		12: {Length: 1373},
		13: {Length: 2687},
	}
}
