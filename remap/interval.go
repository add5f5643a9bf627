package remap

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// SpanOf converts a (start, length) pair into the inclusive interval
// [start, start+length−1]. Returns ErrZeroLength for length 0 and
// ErrOverflow when the end is not representable in T.
func SpanOf[T constraints.Unsigned](start, length T) (Interval[T], error) {
	if length == 0 {
		return Interval[T]{}, fmt.Errorf("span at %d: %w", start, ErrZeroLength)
	}
	hi, ok := checkedAdd(start, length-1, fullMax[T]())
	if !ok {
		return Interval[T]{}, fmt.Errorf("span %d+%d: %w", start, length, ErrOverflow)
	}

	return Interval[T]{Lo: start, Hi: hi}, nil
}

// Valid reports whether Lo ≤ Hi.
func (iv Interval[T]) Valid() bool {
	return iv.Lo <= iv.Hi
}

// Len returns the number of values in iv, saturating at math.MaxUint64 for
// the full 64-bit domain. An invalid interval has length 0.
func (iv Interval[T]) Len() uint64 {
	if !iv.Valid() {
		return 0
	}
	d := uint64(iv.Hi - iv.Lo)
	if d == math.MaxUint64 {
		return d
	}

	return d + 1
}

// Contains reports whether v lies in iv.
func (iv Interval[T]) Contains(v T) bool {
	return iv.Lo <= v && v <= iv.Hi
}

// Overlaps reports whether iv and o share at least one value.
func (iv Interval[T]) Overlaps(o Interval[T]) bool {
	return iv.Lo <= o.Hi && o.Lo <= iv.Hi
}

// Intersect returns the common part of iv and o; ok is false when they are disjoint.
func (iv Interval[T]) Intersect(o Interval[T]) (part Interval[T], ok bool) {
	if !iv.Overlaps(o) {
		return Interval[T]{}, false
	}

	return Interval[T]{Lo: max(iv.Lo, o.Lo), Hi: min(iv.Hi, o.Hi)}, true
}

func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Lo, iv.Hi)
}

// MinLo returns the smallest lower bound among ivs; ok is false for an empty slice.
// Complexity: O(n).
func MinLo[T constraints.Unsigned](ivs []Interval[T]) (lo T, ok bool) {
	for i, iv := range ivs {
		if i == 0 || iv.Lo < lo {
			lo = iv.Lo
		}
	}

	return lo, len(ivs) > 0
}

// TotalLen sums the lengths of ivs, saturating at math.MaxUint64.
func TotalLen[T constraints.Unsigned](ivs []Interval[T]) uint64 {
	var total uint64
	for _, iv := range ivs {
		n := iv.Len()
		if n > math.MaxUint64-total {
			return math.MaxUint64
		}
		total += n
	}

	return total
}

// Coalesce returns a sorted copy of ivs in which overlapping and adjacent
// intervals are merged. The input is left untouched.
// Complexity: O(n log n).
func Coalesce[T constraints.Unsigned](ivs []Interval[T]) []Interval[T] {
	if len(ivs) == 0 {
		return nil
	}
	sorted := slices.Clone(ivs)
	slices.SortFunc(sorted, func(a, b Interval[T]) int {
		return cmp.Compare(a.Lo, b.Lo)
	})

	out := sorted[:1]
	for _, iv := range sorted[1:] {
		last := &out[len(out)-1]
		// iv.Lo-1 only wraps for iv.Lo == 0, where iv.Lo <= last.Hi already holds.
		if iv.Lo <= last.Hi || iv.Lo-1 == last.Hi {
			last.Hi = max(last.Hi, iv.Hi)
			continue
		}
		out = append(out, iv)
	}

	return out
}

// Apply maps v, which must lie in o.Source, through o.
// Panics instead of wrapping when the result is not representable in T.
func (o Offset[T]) Apply(v T) T {
	return mustAdd(o.Dest, v-o.Source.Lo, fullMax[T]())
}

// ApplyInterval maps part, which must lie within o.Source, through o.
func (o Offset[T]) ApplyInterval(part Interval[T]) Interval[T] {
	lo := o.Apply(part.Lo)

	return Interval[T]{Lo: lo, Hi: mustAdd(lo, part.Hi-part.Lo, fullMax[T]())}
}

// Identity reports whether o maps every source value onto itself.
func (o Offset[T]) Identity() bool {
	return o.Dest == o.Source.Lo
}

// Target returns the destination interval covered by o.
func (o Offset[T]) Target() Interval[T] {
	return o.ApplyInterval(o.Source)
}
