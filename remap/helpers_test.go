package remap_test

import (
	"testing"

	"github.com/katalvlaran/lvremap/remap"
	"github.com/stretchr/testify/require"
)

// sampleSections is the seven-section almanac used throughout the tests,
// in "dest src len" order.
func sampleSections() [][]remap.Triple[uint32] {
	return [][]remap.Triple[uint32]{
		{{50, 98, 2}, {52, 50, 48}},
		{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}},
		{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}},
		{{88, 18, 7}, {18, 25, 70}},
		{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}},
		{{0, 69, 1}, {1, 0, 69}},
		{{60, 56, 37}, {56, 93, 4}},
	}
}

func samplePipeline(t testing.TB) *remap.Pipeline[uint32] {
	t.Helper()
	p, err := remap.NewPipeline(sampleSections())
	require.NoError(t, err)

	return p
}

// coverage counts, for every value of a uint8 domain, how many offsets of st contain it.
func coverage(st *remap.Stage[uint8]) [256]int {
	var counts [256]int
	for _, o := range st.Offsets() {
		for v := int(o.Source.Lo); v <= int(o.Source.Hi); v++ {
			counts[v]++
		}
	}

	return counts
}
