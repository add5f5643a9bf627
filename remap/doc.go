// Package remap composes sparse interval remapping tables into total,
// gapless pipelines and evaluates them on points or on whole ranges.
//
// What:
//
//   - Offset shifts every value of a closed source interval onto a
//     destination start: v ↦ Dest + (v − Source.Lo).
//   - Stage is built from sparse caller entries (Triple) and fills every
//     uncovered gap with an identity Offset, so its offsets partition the
//     whole domain [0, max] exactly once.
//   - Pipeline chains stages: the output of stage i is the input of
//     stage i+1.
//   - MapPoint follows one value through the chain; MapRange follows a
//     whole interval, splitting it into fragments wherever it crosses an
//     offset boundary.
//
// Domain:
//
//	The domain is any fixed-width unsigned type (uint8 … uint64). WithMax or
//	WithBits narrows it inside a wider type, e.g. a 32-bit domain carried in
//	uint64. Arithmetic never wraps: entries whose source or destination
//	would run past max are rejected at construction with ErrOverflow.
//
// Complexity:
//
//   - NewStage:  O(E log E) time, O(E) memory (E = entries).
//   - MapPoint:  O(S · log E) (S = stages).
//   - MapRange:  O(S · F · log E) where F is the fragment count, which may
//     grow at every stage.
//
// Errors:
//
//   - ErrZeroLength:      entry or span of length 0.
//   - ErrOverlap:         two entries of one section share a source value.
//   - ErrOverflow:        an interval end lies beyond the domain maximum.
//   - ErrOutOfDomain:     a start value or query lies beyond the domain maximum.
//   - ErrEmptySection:    section without entries under WithStrictSections.
//   - ErrNoSections:      NewPipeline called with no sections.
//   - ErrInvalidInterval: query interval with Lo > Hi.
//
// A built Pipeline is read-only and safe for concurrent queries.
package remap
