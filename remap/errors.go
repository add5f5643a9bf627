package remap

import "errors"

// Sentinel errors for remap construction and queries.
var (
	// ErrZeroLength indicates an entry or span with length 0.
	ErrZeroLength = errors.New("remap: length must be at least 1")
	// ErrOverlap indicates two entries of one section cover the same source value.
	ErrOverlap = errors.New("remap: source intervals overlap")
	// ErrOverflow indicates an interval whose end runs past the domain maximum.
	ErrOverflow = errors.New("remap: interval exceeds domain maximum")
	// ErrOutOfDomain indicates a value beyond the domain maximum.
	ErrOutOfDomain = errors.New("remap: value outside domain")
	// ErrEmptySection indicates a section with no entries in strict mode.
	ErrEmptySection = errors.New("remap: section has no entries")
	// ErrNoSections indicates a pipeline request without any section.
	ErrNoSections = errors.New("remap: pipeline needs at least one section")
	// ErrInvalidInterval indicates an interval whose lower bound exceeds its upper bound.
	ErrInvalidInterval = errors.New("remap: interval lower bound exceeds upper bound")
)
