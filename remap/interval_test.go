package remap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvremap/remap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpanOf(t *testing.T) {
	iv, err := remap.SpanOf[uint32](79, 14)
	require.NoError(t, err)
	assert.Equal(t, remap.Interval[uint32]{Lo: 79, Hi: 92}, iv)

	iv8, err := remap.SpanOf[uint8](250, 6)
	require.NoError(t, err)
	assert.Equal(t, remap.Interval[uint8]{Lo: 250, Hi: 255}, iv8)

	_, err = remap.SpanOf[uint8](250, 7)
	assert.ErrorIs(t, err, remap.ErrOverflow)
	_, err = remap.SpanOf[uint8](3, 0)
	assert.ErrorIs(t, err, remap.ErrZeroLength)
}

func TestInterval_Basics(t *testing.T) {
	a := remap.Interval[uint8]{Lo: 10, Hi: 20}
	b := remap.Interval[uint8]{Lo: 15, Hi: 30}
	c := remap.Interval[uint8]{Lo: 21, Hi: 22}

	assert.True(t, a.Valid())
	assert.False(t, remap.Interval[uint8]{Lo: 2, Hi: 1}.Valid())
	assert.Equal(t, uint64(11), a.Len())
	assert.Equal(t, uint64(0), remap.Interval[uint8]{Lo: 2, Hi: 1}.Len())
	assert.Equal(t, uint64(math.MaxUint64), remap.Interval[uint64]{Lo: 0, Hi: math.MaxUint64}.Len())
	assert.True(t, a.Contains(10))
	assert.True(t, a.Contains(20))
	assert.False(t, a.Contains(21))
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
	assert.Equal(t, "[10,20]", a.String())

	part, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, remap.Interval[uint8]{Lo: 15, Hi: 20}, part)
	_, ok = a.Intersect(c)
	assert.False(t, ok)
}

func TestCoalesce(t *testing.T) {
	in := []remap.Interval[uint32]{{Lo: 10, Hi: 20}, {Lo: 0, Hi: 5}, {Lo: 6, Hi: 8}, {Lo: 15, Hi: 30}, {Lo: 40, Hi: 41}}
	got := remap.Coalesce(in)
	assert.Equal(t, []remap.Interval[uint32]{{Lo: 0, Hi: 8}, {Lo: 10, Hi: 30}, {Lo: 40, Hi: 41}}, got)
	assert.Equal(t, remap.Interval[uint32]{Lo: 10, Hi: 20}, in[0], "input must stay untouched")

	top := remap.Coalesce([]remap.Interval[uint8]{{Lo: 255, Hi: 255}, {Lo: 0, Hi: 255}})
	assert.Equal(t, []remap.Interval[uint8]{{Lo: 0, Hi: 255}}, top)

	assert.Nil(t, remap.Coalesce[uint8](nil))
}

func TestMinLoAndTotalLen(t *testing.T) {
	_, ok := remap.MinLo[uint16](nil)
	assert.False(t, ok)

	lo, ok := remap.MinLo([]remap.Interval[uint16]{{Lo: 9, Hi: 12}, {Lo: 3, Hi: 3}, {Lo: 7, Hi: 100}})
	require.True(t, ok)
	assert.Equal(t, uint16(3), lo)

	full := remap.Interval[uint64]{Lo: 0, Hi: math.MaxUint64}
	assert.Equal(t, uint64(math.MaxUint64), remap.TotalLen([]remap.Interval[uint64]{full, full}))
}

func TestOffset(t *testing.T) {
	o := remap.Offset[uint8]{Source: remap.Interval[uint8]{Lo: 50, Hi: 97}, Dest: 52}
	assert.Equal(t, uint8(81), o.Apply(79))
	assert.Equal(t, remap.Interval[uint8]{Lo: 52, Hi: 99}, o.Target())
	assert.Equal(t, remap.Interval[uint8]{Lo: 81, Hi: 95}, o.ApplyInterval(remap.Interval[uint8]{Lo: 79, Hi: 93}))
	assert.False(t, o.Identity())
	assert.True(t, remap.Offset[uint8]{Source: remap.Interval[uint8]{Lo: 4, Hi: 9}, Dest: 4}.Identity())

	bad := remap.Offset[uint8]{Source: remap.Interval[uint8]{Lo: 0, Hi: 10}, Dest: 250}
	assert.Panics(t, func() { bad.Apply(10) })
}
