package remap

import "fmt"

// MapPoint follows v through every stage and returns the terminal value.
// Total for every v in [0, max]; ErrOutOfDomain otherwise.
// Complexity: O(S · log E).
func (p *Pipeline[T]) MapPoint(v T) (T, error) {
	if v > p.max {
		return 0, fmt.Errorf("%d > %d: %w", v, p.max, ErrOutOfDomain)
	}
	for _, s := range p.stages {
		v = s.mapPoint(v)
	}

	return v, nil
}

// Trace returns v followed by its value after each stage, so
// len(result) == p.Len()+1 and the last element equals MapPoint(v).
func (p *Pipeline[T]) Trace(v T) ([]T, error) {
	if v > p.max {
		return nil, fmt.Errorf("%d > %d: %w", v, p.max, ErrOutOfDomain)
	}
	path := make([]T, 0, len(p.stages)+1)
	path = append(path, v)
	for _, s := range p.stages {
		v = s.mapPoint(v)
		path = append(path, v)
	}

	return path, nil
}

// MapRange follows iv through every stage. At each stage every current
// fragment is split across the offsets it overlaps and translated; the
// resulting fragments feed the next stage.
//
// The returned fragments are neither sorted nor merged, but every value of
// iv lands in exactly one of them, at the position MapPoint would give it.
// Use Coalesce to merge and MinLo for the smallest reachable output.
//
// Errors: ErrInvalidInterval, ErrOutOfDomain.
// Complexity: O(S · F · log E), F = fragments alive at a stage.
func (p *Pipeline[T]) MapRange(iv Interval[T]) ([]Interval[T], error) {
	if err := checkInterval(iv, p.max); err != nil {
		return nil, err
	}

	cur := []Interval[T]{iv}
	var next []Interval[T]
	for _, s := range p.stages {
		next = next[:0]
		for _, frag := range cur {
			next = s.appendRange(next, frag)
		}
		cur, next = next, cur
	}

	return cur, nil
}

// MapRanges maps each interval and flattens the fragments into one slice.
// The first invalid interval aborts the call.
func (p *Pipeline[T]) MapRanges(ivs []Interval[T]) ([]Interval[T], error) {
	var out []Interval[T]
	for i, iv := range ivs {
		frags, err := p.MapRange(iv)
		if err != nil {
			return nil, fmt.Errorf("range %d: %w", i, err)
		}
		out = append(out, frags...)
	}

	return out, nil
}
