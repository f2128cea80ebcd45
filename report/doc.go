// Package report is the metrics sink of the benchmark suite: it collects
// per-grid-size wall times and accuracy numbers and renders them for
// human and tooling consumption.
//
// What:
//
//   - Accumulator gathers one DataRow per grid size (five variant timings
//     plus the L2 error) and writes CSV, aligned tables, and gnuplot
//     scripts (WriteTimingScript, WriteErrorScript) over that CSV.
//   - ScaleSet does the same for scalability runs: distributed and hybrid
//     timings across worker counts at a fixed grid size.
//   - ReadCSV round-trips a written CSV for post-processing.
//
// The accumulator is an explicit object the benchmarking loop owns and
// threads through, not ambient package state; the coordinating worker is
// its only writer, so it needs no locking.
//
// Errors: ErrBadHeader and ErrBadRecord on CSV decode; writers only
// propagate the underlying io errors.
package report
