package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvremap/remap"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
)

// Parse reads an almanac and builds its pipeline.
// Blank lines are separators only; section order is file order.
func Parse(r io.Reader, opts Options) (*Almanac, error) {
	if opts.DomainBits < 1 || opts.DomainBits > 64 {
		return nil, fmt.Errorf("%d: %w", opts.DomainBits, ErrBadDomainBits)
	}

	a := &Almanac{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, seedsPrefix):
			if a.Seeds != nil {
				return nil, fmt.Errorf("line %d: duplicate seeds: %w", lineNo, ErrMalformedLine)
			}
			seeds, err := parseUints(strings.Fields(strings.TrimPrefix(line, seedsPrefix)))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			if len(seeds) == 0 {
				return nil, fmt.Errorf("line %d: %w", lineNo, ErrNoSeeds)
			}
			a.Seeds = seeds
		case strings.HasSuffix(line, headerSuffix):
			a.Sections = append(a.Sections, newSection(strings.TrimSuffix(line, headerSuffix)))
		default:
			if len(a.Sections) == 0 {
				return nil, fmt.Errorf("line %d: mapping before any section header: %w", lineNo, ErrMalformedLine)
			}
			t, err := parseTriple(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			s := &a.Sections[len(a.Sections)-1]
			s.Entries = append(s.Entries, t)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read almanac: %w", err)
	}
	if len(a.Seeds) == 0 {
		return nil, ErrNoSeeds
	}

	if err := a.build(opts); err != nil {
		return nil, err
	}

	return a, nil
}

// ParseString is Parse over an in-memory input.
func ParseString(s string, opts Options) (*Almanac, error) {
	return Parse(strings.NewReader(s), opts)
}

func (a *Almanac) build(opts Options) error {
	ropts := []remap.Option{remap.WithBits(opts.DomainBits)}
	if opts.Strict {
		ropts = append(ropts, remap.WithStrictSections())
	}

	sections := make([][]remap.Triple[uint64], len(a.Sections))
	for i, s := range a.Sections {
		sections[i] = s.Entries
	}
	p, err := remap.NewPipeline(sections, ropts...)
	if err != nil {
		// Re-run the failing section alone to name it.
		for _, s := range a.Sections {
			if _, serr := remap.NewStage(s.Entries, ropts...); serr != nil {
				return fmt.Errorf("section %q: %w", s.Name, serr)
			}
		}
		return fmt.Errorf("build pipeline: %w", err)
	}
	a.pipeline = p

	return nil
}

// newSection splits "seed-to-soil" into its source and target categories.
func newSection(name string) Section {
	s := Section{Name: name}
	if from, to, ok := strings.Cut(name, "-to-"); ok {
		s.From, s.To = from, to
	}

	return s
}

func parseTriple(line string) (remap.Triple[uint64], error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return remap.Triple[uint64]{}, fmt.Errorf("want 3 values, got %d: %w", len(fields), ErrMalformedLine)
	}
	nums, err := parseUints(fields)
	if err != nil {
		return remap.Triple[uint64]{}, err
	}

	return remap.Triple[uint64]{Dest: nums[0], Src: nums[1], Len: nums[2]}, nil
}

func parseUints(fields []string) ([]uint64, error) {
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedLine, err)
		}
		out = append(out, n)
	}

	return out, nil
}
