// Package engine holds the rocket engine dataset and the statistics computed over it.
//
// # Pipeline
//
// The engines analysis is three explicit steps, each testable with an in-memory table:
//   - loader.go: CSV -> EngineTable (all-or-nothing, typed errors)
//   - aggregate.go: per-category and whole-table statistics
//   - report.go: the plain-text console summary
//
// Charts live in the chart sub-package and consume an EngineTable plus the
// median Aggregation produced here.
package engine
