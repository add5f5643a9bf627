package remap

import "golang.org/x/exp/constraints"

// Interval is a closed, inclusive range [Lo, Hi] over an unsigned domain.
// A valid Interval has Lo ≤ Hi; the zero value is the single point {0}.
type Interval[T constraints.Unsigned] struct {
	Lo, Hi T
}

// Offset maps every value of Source onto Dest + (v − Source.Lo).
// Offsets inside a Stage never run past the domain maximum on either side.
type Offset[T constraints.Unsigned] struct {
	Source Interval[T]
	Dest   T
}

// Triple is one raw caller entry: Len values starting at Src map onto Len
// values starting at Dest. Field order follows the common
// "destination source length" text layout.
type Triple[T constraints.Unsigned] struct {
	Dest T
	Src  T
	Len  T
}

// Stage is an immutable, total partition of [0, max]: its offsets are
// sorted by Source.Lo, never overlap and leave no gaps.
type Stage[T constraints.Unsigned] struct {
	offsets []Offset[T]
	max     T
}

// Pipeline is an ordered chain of stages. The successor of stage i is
// stage i+1; the last stage is terminal. Built once, queried read-only.
type Pipeline[T constraints.Unsigned] struct {
	stages []*Stage[T]
	max    T
}
