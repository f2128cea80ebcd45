// Package poisson2d is your in-memory laboratory for solving the 2D
// Poisson/Laplace equation on the unit square — and for racing the same
// Jacobi relaxation across every parallelization strategy Go offers.
//
// 🚀 What is poisson2d?
//
//	A benchmark-oriented solver suite that brings together:
//		• Grid primitives: dense n×n fields, Dirichlet boundaries, discrete norms
//		• Problems: forcing/boundary/exact functions, manufactured solutions
//		• Serial & shared-memory Jacobi sweeps (pargo row bands)
//		• A message-passing fabric: ranks, barriers, ring allreduce, scatter/gather
//		• Distributed & hybrid domain-decomposition solvers with halo exchange
//		• A Schwarz-type variant: exact banded-Cholesky local solves per sweep
//		• Reporting: CSV, aligned tables, gnuplot scripts, legacy VTK export
//
// ✨ Why choose poisson2d?
//
//   - Honest benchmarks – one stencil, five strategies, identical convergence rules
//   - Deterministic – fixed partition plans, ordered collectives, no hidden races
//   - Real numerics – gonum matrices and banded factorizations, not toy slices
//   - Transparent failure – non-convergence is reported state, never a panic
//
// Under the hood, everything is organized into focused subpackages:
//
//	grid/      — dense field storage, boundary application, L2 norms
//	problem/   — Func2D, Dirichlet data, manufactured problems
//	params/    — YAML simulation parameters with compiled expressions
//	partition/ — row-block plans: owned rows, ghost rows, offsets
//	comm/      — in-process ranks: send/recv, barrier, allreduce, scatter/gather
//	jacobi/    — Solve, SolveParallel, SolveDistributed, SolveHybrid
//	schwarz/   — SolveDirect: per-block sparse direct solves (Schwarz sweeps)
//	vtk/       — STRUCTURED_GRID ASCII writer for the final field
//	report/    — result accumulator, CSV/table/gnuplot emitters
//
// Quick ASCII picture of the decomposition (n rows, 3 workers):
//
//	┌──────────────┐ rank 0: owned rows + 1 trailing ghost
//	├──────────────┤ rank 1: leading ghost + owned rows + trailing ghost
//	├──────────────┤ rank 2: leading ghost + owned rows
//	└──────────────┘
//
//	Ghost rows mirror a neighbour's edge row and are refreshed by the halo
//	exchange after every sweep; the true domain boundary is fixed Dirichlet data.
//
// Start with jacobi.Solve for the single-threaded baseline, then graduate to
// SolveDistributed and schwarz.SolveDirect to see the decomposition at work.
//
//	go get github.com/katalvlaran/poisson2d
package poisson2d
