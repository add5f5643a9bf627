package remap

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// NewStage builds a total Stage from sparse, possibly unordered entries.
//
// Algorithm:
//  1. Validate and convert each Triple into an Offset with
//     Source = [Src, Src+Len−1].
//  2. Sort offsets by Source.Lo.
//  3. Sweep left to right with a frontier (first uncovered value, starting
//     at 0). A gap before an offset gets an identity filler
//     [frontier, Lo−1] ↦ frontier. The frontier then moves to Hi+1,
//     saturating once Hi reaches the domain maximum.
//  4. If the frontier is still open after the last offset, a trailing
//     filler [frontier, max] ↦ frontier closes the partition.
//
// An empty entry list yields the identity stage [0, max] ↦ 0, or
// ErrEmptySection under WithStrictSections.
//
// Errors: ErrZeroLength, ErrOutOfDomain, ErrOverflow, ErrOverlap,
// ErrEmptySection, each wrapped with the offending entry.
// Complexity: O(E log E) time, O(E) memory.
func NewStage[T constraints.Unsigned](entries []Triple[T], opts ...Option) (*Stage[T], error) {
	c := newConfig(opts)

	return buildStage(entries, domainMax[T](c), c.strict)
}

func buildStage[T constraints.Unsigned](entries []Triple[T], limit T, strict bool) (*Stage[T], error) {
	if len(entries) == 0 {
		if strict {
			return nil, ErrEmptySection
		}

		return &Stage[T]{offsets: []Offset[T]{identity(0, limit)}, max: limit}, nil
	}

	explicit := make([]Offset[T], 0, len(entries))
	for i, e := range entries {
		o, err := toOffset(e, limit)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%d %d %d): %w", i, e.Dest, e.Src, e.Len, err)
		}
		explicit = append(explicit, o)
	}
	slices.SortFunc(explicit, func(a, b Offset[T]) int {
		return cmp.Compare(a.Source.Lo, b.Source.Lo)
	})

	offsets := make([]Offset[T], 0, 2*len(explicit)+1)
	var frontier T
	open := true
	for i, o := range explicit {
		if !open || o.Source.Lo < frontier {
			return nil, fmt.Errorf("%v and %v: %w", explicit[i-1].Source, o.Source, ErrOverlap)
		}
		if o.Source.Lo > frontier {
			offsets = append(offsets, identity(frontier, o.Source.Lo-1))
		}
		offsets = append(offsets, o)
		frontier, open = saturatingInc(o.Source.Hi, limit)
	}
	if open {
		offsets = append(offsets, identity(frontier, limit))
	}

	return &Stage[T]{offsets: offsets, max: limit}, nil
}

// toOffset validates one raw entry against [0, limit].
func toOffset[T constraints.Unsigned](e Triple[T], limit T) (Offset[T], error) {
	if e.Len == 0 {
		return Offset[T]{}, ErrZeroLength
	}
	if e.Src > limit || e.Dest > limit {
		return Offset[T]{}, ErrOutOfDomain
	}
	hi, ok := checkedAdd(e.Src, e.Len-1, limit)
	if !ok {
		return Offset[T]{}, fmt.Errorf("source end: %w", ErrOverflow)
	}
	if _, ok := checkedAdd(e.Dest, e.Len-1, limit); !ok {
		return Offset[T]{}, fmt.Errorf("destination end: %w", ErrOverflow)
	}

	return Offset[T]{Source: Interval[T]{Lo: e.Src, Hi: hi}, Dest: e.Dest}, nil
}

func identity[T constraints.Unsigned](lo, hi T) Offset[T] {
	return Offset[T]{Source: Interval[T]{Lo: lo, Hi: hi}, Dest: lo}
}

// Offsets returns a copy of the stage's offsets in ascending source order.
func (s *Stage[T]) Offsets() []Offset[T] {
	return slices.Clone(s.offsets)
}

// Len returns the number of offsets, fillers included.
func (s *Stage[T]) Len() int {
	return len(s.offsets)
}

// Max returns the domain maximum the stage partitions.
func (s *Stage[T]) Max() T {
	return s.max
}

// MapPoint maps v through this stage alone.
// Returns ErrOutOfDomain if v exceeds the domain maximum.
// Complexity: O(log E).
func (s *Stage[T]) MapPoint(v T) (T, error) {
	if v > s.max {
		return 0, fmt.Errorf("%d > %d: %w", v, s.max, ErrOutOfDomain)
	}

	return s.mapPoint(v), nil
}

// MapRange maps iv through this stage alone, returning one fragment per
// offset that iv overlaps, in ascending source order.
// Complexity: O(log E + F).
func (s *Stage[T]) MapRange(iv Interval[T]) ([]Interval[T], error) {
	if err := checkInterval(iv, s.max); err != nil {
		return nil, err
	}

	return s.appendRange(nil, iv), nil
}

func (s *Stage[T]) mapPoint(v T) T {
	return s.offsets[s.find(v)].Apply(v)
}

// appendRange appends the fragments of iv to dst.
func (s *Stage[T]) appendRange(dst []Interval[T], iv Interval[T]) []Interval[T] {
	for i := s.find(iv.Lo); i < len(s.offsets); i++ {
		o := s.offsets[i]
		if o.Source.Lo > iv.Hi {
			break
		}
		part, _ := o.Source.Intersect(iv)
		dst = append(dst, o.ApplyInterval(part))
	}

	return dst
}

// find returns the index of the unique offset containing v.
// The partition invariant guarantees a match for every v ≤ max.
func (s *Stage[T]) find(v T) int {
	i := sort.Search(len(s.offsets), func(i int) bool {
		return s.offsets[i].Source.Hi >= v
	})
	if i == len(s.offsets) || !s.offsets[i].Source.Contains(v) {
		panic(fmt.Sprintf("remap: no offset covers %d; partition invariant broken", v))
	}

	return i
}

func checkInterval[T constraints.Unsigned](iv Interval[T], limit T) error {
	if !iv.Valid() {
		return fmt.Errorf("%v: %w", iv, ErrInvalidInterval)
	}
	if iv.Hi > limit {
		return fmt.Errorf("%v beyond %d: %w", iv, limit, ErrOutOfDomain)
	}

	return nil
}
