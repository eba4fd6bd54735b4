package search_test

import (
	"fmt"

	"github.com/katalvlaran/snakebox/search"
	"github.com/katalvlaran/snakebox/snake"
)

// The three-dimensional cube is small enough for an exhaustive run; the
// engine recovers the optimal snake of length 4.
func ExampleSearch() {
	res, err := search.Search(3)
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}

	ok, _ := snake.ValidateTransitions(res.Sequence, res.Dimension)
	fmt.Println("length:", res.Length)
	fmt.Println("valid:", ok)
	// Output:
	// length: 4
	// valid: true
}
