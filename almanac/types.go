package almanac

import (
	"errors"

	"github.com/katalvlaran/lvremap/remap"
)

// Sentinel errors for almanac parsing and solving.
var (
	// ErrNoSeeds indicates a missing or empty seeds line.
	ErrNoSeeds = errors.New("almanac: no seeds")
	// ErrMalformedLine indicates a line that cannot be parsed.
	ErrMalformedLine = errors.New("almanac: malformed line")
	// ErrOddSeeds indicates seed values that cannot be paired into ranges.
	ErrOddSeeds = errors.New("almanac: seed ranges need an even number of values")
	// ErrBadDomainBits indicates a domain width outside 1..64.
	ErrBadDomainBits = errors.New("almanac: domain bits must be within 1..64")
	// ErrNotParsed indicates an Almanac that was not built by Parse.
	ErrNotParsed = errors.New("almanac: no pipeline; construct with Parse")
)

// DefaultDomainBits is the width of the reference puzzle domain.
const DefaultDomainBits = 32

// Options tunes parsing.
type Options struct {
	// DomainBits bounds every value to [0, 2^DomainBits − 1].
	DomainBits int
	// Strict rejects sections without mapping lines instead of
	// treating them as identity stages.
	Strict bool
}

// DefaultOptions returns Options with DomainBits=32, Strict=false.
func DefaultOptions() Options {
	return Options{DomainBits: DefaultDomainBits}
}

// Section is one named mapping table, e.g. "seed-to-soil".
type Section struct {
	Name    string
	From    string
	To      string
	Entries []remap.Triple[uint64]
}

// Almanac holds the parsed seeds and sections plus the pipeline built from them.
// Construct it with Parse or ParseString; a hand-built Almanac has no
// pipeline and its solvers return ErrNotParsed.
type Almanac struct {
	Seeds    []uint64
	Sections []Section
	pipeline *remap.Pipeline[uint64]
}

// Step is one hop of a traced seed: the category reached and its value.
type Step struct {
	Category string `json:"category" yaml:"category"`
	Value    uint64 `json:"value" yaml:"value"`
}
