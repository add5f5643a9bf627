package remap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// NewPipeline builds one Stage per section and chains them in order:
// values leaving section i are looked up in section i+1.
// Stages live in a slice indexed by position, so the successor link is
// implicit and the chain can neither share stages nor form cycles.
//
// Any stage error aborts assembly; no partial pipeline is returned.
// Errors: ErrNoSections, or a NewStage error wrapped with the section index.
// Complexity: O(Σ E_i log E_i).
func NewPipeline[T constraints.Unsigned](sections [][]Triple[T], opts ...Option) (*Pipeline[T], error) {
	if len(sections) == 0 {
		return nil, ErrNoSections
	}
	c := newConfig(opts)
	limit := domainMax[T](c)

	stages := make([]*Stage[T], len(sections))
	for i, entries := range sections {
		st, err := buildStage(entries, limit, c.strict)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		stages[i] = st
	}

	return &Pipeline[T]{stages: stages, max: limit}, nil
}

// Len returns the number of stages.
func (p *Pipeline[T]) Len() int {
	return len(p.stages)
}

// Stage returns the stage at position i (0 is the head).
func (p *Pipeline[T]) Stage(i int) *Stage[T] {
	return p.stages[i]
}

// Stages returns the stages in evaluation order.
func (p *Pipeline[T]) Stages() []*Stage[T] {
	out := make([]*Stage[T], len(p.stages))
	copy(out, p.stages)

	return out
}

// Max returns the domain maximum shared by every stage.
func (p *Pipeline[T]) Max() T {
	return p.max
}
