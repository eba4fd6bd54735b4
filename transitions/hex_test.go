package transitions_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/snakebox/transitions"
)

// TestParseHex covers digits, letters, case folding and skipped noise.
func TestParseHex(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []int
	}{
		{"Plain", "0120", []int{0, 1, 2, 0}},
		{"Commas", "0,1,2,0", []int{0, 1, 2, 0}},
		{"Letters", "012a", []int{0, 1, 2, 10}},
		{"UpperCase", "0BCf", []int{0, 11, 12, 15}},
		{"Whitespace", " 0 1\n2\t0 ", []int{0, 1, 2, 0}},
		{"Noise", "0x1-2;0!", []int{0, 1, 2, 0}},
		{"Empty", "", []int{}},
		{"OnlyNoise", ",, \n", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := transitions.ParseHex(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseHex(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

// TestFormatHex renders sequences and rejects out-of-range values.
func TestFormatHex(t *testing.T) {
	got, err := transitions.FormatHex([]int{0, 1, 2, 0, 10, 15})
	if err != nil {
		t.Fatalf("FormatHex error: %v", err)
	}
	if got != "0120af" {
		t.Errorf("FormatHex = %q; want %q", got, "0120af")
	}

	if _, err = transitions.FormatHex([]int{0, 16}); !errors.Is(err, transitions.ErrNotHex) {
		t.Errorf("FormatHex([0 16]) error = %v; want ErrNotHex", err)
	}
	if _, err = transitions.FormatHex([]int{-1}); !errors.Is(err, transitions.ErrNotHex) {
		t.Errorf("FormatHex([-1]) error = %v; want ErrNotHex", err)
	}
}

// TestHexRoundTrip verifies ParseHex(FormatHex(seq)) == seq.
func TestHexRoundTrip(t *testing.T) {
	seq := []int{0, 1, 2, 0, 3, 1, 0, 12, 15}
	s, err := transitions.FormatHex(seq)
	if err != nil {
		t.Fatalf("FormatHex error: %v", err)
	}
	if got := transitions.ParseHex(s); !reflect.DeepEqual(got, seq) {
		t.Errorf("ParseHex(FormatHex(%v)) = %v", seq, got)
	}
}
