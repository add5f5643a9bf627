package almanac

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvremap/remap"
)

// Pipeline returns the pipeline built from the sections.
func (a *Almanac) Pipeline() *remap.Pipeline[uint64] {
	return a.pipeline
}

// LowestLocation maps every seed as a single value and returns the smallest result.
func (a *Almanac) LowestLocation() (uint64, error) {
	if a.pipeline == nil {
		return 0, ErrNotParsed
	}
	var best uint64
	for i, seed := range a.Seeds {
		loc, err := a.pipeline.MapPoint(seed)
		if err != nil {
			return 0, fmt.Errorf("seed %d: %w", seed, err)
		}
		if i == 0 || loc < best {
			best = loc
		}
	}

	return best, nil
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]remap.Interval[uint64], error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%d values: %w", len(a.Seeds), ErrOddSeeds)
	}
	ranges := make([]remap.Interval[uint64], 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		iv, err := remap.SpanOf(a.Seeds[i], a.Seeds[i+1])
		if err != nil {
			return nil, fmt.Errorf("seed pair %d: %w", i/2, err)
		}
		ranges = append(ranges, iv)
	}

	return ranges, nil
}

// LowestRangeLocation maps every seed range and returns the smallest
// reachable location. Ranges are evaluated concurrently, at most workers
// at a time (workers ≤ 0 means no limit).
func (a *Almanac) LowestRangeLocation(ctx context.Context, workers int) (uint64, error) {
	if a.pipeline == nil {
		return 0, ErrNotParsed
	}
	ranges, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}

	mins := make([]uint64, len(ranges))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, iv := range ranges {
		i, iv := i, iv
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			frags, err := a.pipeline.MapRange(iv)
			if err != nil {
				return fmt.Errorf("seed range %v: %w", iv, err)
			}
			// MapRange never returns an empty set for a valid interval.
			mins[i], _ = remap.MinLo(frags)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	return slices.Min(mins), nil
}

// Trace follows one seed through every section.
// The first step is the seed itself under the first section's source category.
func (a *Almanac) Trace(seed uint64) ([]Step, error) {
	if a.pipeline == nil {
		return nil, ErrNotParsed
	}
	path, err := a.pipeline.Trace(seed)
	if err != nil {
		return nil, fmt.Errorf("seed %d: %w", seed, err)
	}
	steps := make([]Step, len(path))
	for i, v := range path {
		steps[i] = Step{Category: a.category(i), Value: v}
	}

	return steps, nil
}

// category names the value after i stages.
func (a *Almanac) category(i int) string {
	if i == 0 {
		return or(a.Sections[0].From, "input")
	}
	s := a.Sections[i-1]

	return or(s.To, s.Name)
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
