package transitions_test

import (
	"fmt"

	"github.com/katalvlaran/snakebox/transitions"
)

// ExampleParseHex parses a published record string into a transition
// sequence and replays it into explicit vertex labels.
func ExampleParseHex() {
	seq := transitions.ParseHex("0,1,2,0")
	vertices, err := transitions.ToVertices(seq, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("transitions:", seq)
	fmt.Println("vertices:   ", vertices)
	fmt.Println("head:       ", transitions.CurrentVertex(seq))
	// Output:
	// transitions: [0 1 2 0]
	// vertices:    [0 1 3 7 6]
	// head:        6
}

// ExampleFromVertices recovers the transition encoding of a vertex path.
func ExampleFromVertices() {
	seq, err := transitions.FromVertices([]int{0, 1, 3, 7, 6})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	hex, _ := transitions.FormatHex(seq)
	fmt.Printf("seq=%v hex=%s dim=%d\n", seq, hex, transitions.Dimension(seq))
	// Output:
	// seq=[0 1 2 0] hex=0120 dim=3
}
