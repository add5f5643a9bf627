package remap

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Option customizes stage and pipeline construction.
// Option constructors panic on meaningless input; construction itself
// reports problems as errors.
type Option func(*config)

type config struct {
	max    uint64
	hasMax bool
	strict bool
}

// WithMax narrows the domain to [0, m]. A bound at or above the element
// type's own maximum leaves the full type width in effect.
func WithMax(m uint64) Option {
	return func(c *config) {
		c.max = m
		c.hasMax = true
	}
}

// WithBits narrows the domain to [0, 2^bits − 1]. Panics unless 1 ≤ bits ≤ 64.
func WithBits(bits int) Option {
	if bits < 1 || bits > 64 {
		panic("remap: WithBits requires 1 <= bits <= 64")
	}

	return WithMax(uint64(math.MaxUint64) >> (64 - bits))
}

// WithStrictSections rejects sections without entries (ErrEmptySection)
// instead of turning them into identity stages.
func WithStrictSections() Option {
	return func(c *config) {
		c.strict = true
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// domainMax resolves the effective domain maximum for T.
func domainMax[T constraints.Unsigned](c config) T {
	full := fullMax[T]()
	if c.hasMax && c.max < uint64(full) {
		return T(c.max)
	}

	return full
}
