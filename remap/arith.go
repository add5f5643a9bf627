package remap

import "golang.org/x/exp/constraints"

// fullMax returns the largest value representable by T.
func fullMax[T constraints.Unsigned]() T {
	return ^T(0)
}

// checkedAdd returns a+b when both operands and the sum stay within [0, limit].
func checkedAdd[T constraints.Unsigned](a, b, limit T) (T, bool) {
	if a > limit || b > limit-a {
		return 0, false
	}

	return a + b, true
}

// saturatingInc returns v+1, or (limit, false) once v has reached limit and the
// domain is exhausted.
func saturatingInc[T constraints.Unsigned](v, limit T) (T, bool) {
	if v >= limit {
		return limit, false
	}

	return v + 1, true
}

// mustAdd is checkedAdd for sums a built Stage guarantees to fit.
// A failure means a broken construction invariant.
func mustAdd[T constraints.Unsigned](a, b, limit T) T {
	sum, ok := checkedAdd(a, b, limit)
	if !ok {
		panic("remap: offset arithmetic overflow; stage invariant broken")
	}

	return sum
}
