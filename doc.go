// Package lvremap is a cascading interval-remapping toolkit: sparse
// "source range → destination" tables become total, gapless stages, stages
// chain into pipelines, and pipelines answer point and range queries.
//
// What lives where:
//
//	remap/        — Interval, Offset, Stage, Pipeline; gap filling, MapPoint, MapRange
//	almanac/      — parser for the "seeds + mapping sections" text format and its solvers
//	cmd/lvremap/  — CLI: solve, trace, version
//	internal/     — configuration (envconfig + .env) and zerolog setup for the CLI
//
// Quick ASCII example of one stage over [0, 255]:
//
//	source  [0 ─── 49][50 ──── 97][98,99][100 ──── 255]
//	dest     0 ─── 49  52 ──── 99  50,51  100 ──── 255
//	         identity   +2 shift   −48    identity
//
// A range crossing a boundary splits: [45,55] ↦ [45,49] ∪ [52,57].
//
//	go get github.com/katalvlaran/lvremap/remap
package lvremap
