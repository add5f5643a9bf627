// File: remap/example_test.go
package remap_test

import (
	"fmt"

	"github.com/katalvlaran/lvremap/remap"
)

////////////////////////////////////////////////////////////////////////////////
// Example: single stage
////////////////////////////////////////////////////////////////////////////////

// ExampleNewStage shows the identity fillers inserted around two sparse
// entries ("dest src len": 50 98 2 and 52 50 48) over a uint8 domain.
func ExampleNewStage() {
	st, err := remap.NewStage([]remap.Triple[uint8]{{50, 98, 2}, {52, 50, 48}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, o := range st.Offsets() {
		fmt.Printf("%v -> %d identity=%v\n", o.Source, o.Dest, o.Identity())
	}
	v, _ := st.MapPoint(79)
	fmt.Println("79 ->", v)

	// Output:
	// [0,49] -> 0 identity=true
	// [50,97] -> 52 identity=false
	// [98,99] -> 50 identity=false
	// [100,255] -> 100 identity=true
	// 79 -> 81
}

////////////////////////////////////////////////////////////////////////////////
// Example: range fragmentation through a pipeline
////////////////////////////////////////////////////////////////////////////////

// ExamplePipeline_MapRange pushes the seed ranges 79+14 and 55+13 through
// the seven sample sections. Each range fragments along the way; the
// smallest lower bound is the lowest reachable location.
func ExamplePipeline_MapRange() {
	p, err := remap.NewPipeline([][]remap.Triple[uint32]{
		{{50, 98, 2}, {52, 50, 48}},
		{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}},
		{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}},
		{{88, 18, 7}, {18, 25, 70}},
		{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}},
		{{0, 69, 1}, {1, 0, 69}},
		{{60, 56, 37}, {56, 93, 4}},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	var all []remap.Interval[uint32]
	for _, seed := range [][2]uint32{{79, 14}, {55, 13}} {
		span, _ := remap.SpanOf(seed[0], seed[1])
		frags, _ := p.MapRange(span)
		fmt.Println(span, "->", frags)
		all = append(all, frags...)
	}
	lo, _ := remap.MinLo(all)
	fmt.Println("merged:", remap.Coalesce(all))
	fmt.Println("lowest:", lo)

	// Output:
	// [79,92] -> [[82,84] [46,55] [60,60]]
	// [55,67] -> [[86,89] [94,96] [56,59] [97,98]]
	// merged: [[46,60] [82,84] [86,89] [94,98]]
	// lowest: 46
}
