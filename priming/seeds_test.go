package priming_test

import (
	"testing"

	"github.com/katalvlaran/snakebox/priming"
)

//----------------------------------------------------------------------------//
// Seed Strategy Tests
//----------------------------------------------------------------------------//

func TestDefaultSeedStrategy_ShortSeedHasNoPrefixes(t *testing.T) {
	for _, n := range []int{0, 1, 50, 100} {
		if got := priming.DefaultSeedStrategy(n, 10); got != nil {
			t.Fatalf("seed length %d: want no prefixes, got %v", n, got)
		}
	}
}

func TestDefaultSeedStrategy_StandardRatios(t *testing.T) {
	got := priming.DefaultSeedStrategy(200, 10)
	want := []int{196, 190, 180, 170, 160, 150, 140}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: want %d, got %d (full: %v)", i, want[i], got[i], got)
		}
	}
}

func TestDefaultSeedStrategy_HighDimIsDenserAndDeduplicated(t *testing.T) {
	standard := priming.DefaultSeedStrategy(2000, 10)
	highDim := priming.DefaultSeedStrategy(2000, 14)

	if len(highDim) <= len(standard) {
		t.Fatalf("high-dimension schedule should be denser: %d vs %d",
			len(highDim), len(standard))
	}

	seen := make(map[int]bool)
	for _, n := range highDim {
		if n <= 0 || n >= 2000 {
			t.Fatalf("prefix length %d out of range (0, 2000)", n)
		}
		if seen[n] {
			t.Fatalf("duplicate prefix length %d in %v", n, highDim)
		}
		seen[n] = true
	}
}
