// Package almanac reads the "seeds + mapping sections" text format and
// answers lowest-location questions with a remap.Pipeline.
//
// Input layout:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Each mapping line is "dest src len". Sections chain in file order.
//
// Part one maps every seed as a point (LowestLocation). Part two reads the
// seeds as (start, length) pairs and maps whole ranges
// (LowestRangeLocation), fanning the ranges out over a bounded errgroup
// since the pipeline is read-only.
//
// Errors:
//
//   - ErrNoSeeds:       missing or empty "seeds:" line.
//   - ErrMalformedLine: a line that is neither a header nor three integers.
//   - ErrOddSeeds:      part two with an odd number of seed values.
//   - ErrBadDomainBits: Options.DomainBits outside 1..64.
//   - ErrNotParsed:     solver called on an Almanac not built by Parse.
//
// remap construction errors are returned wrapped with the section name.
package almanac
