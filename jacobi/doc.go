// Package jacobi solves the 2D Poisson equation −Δu = f on the unit
// square with Dirichlet boundaries, by Jacobi relaxation, across the four
// iterative execution strategies the benchmark suite compares.
//
// What:
//
//   - Solve — single-threaded reference sweep.
//   - SolveParallel — the same sweep banded over pargo goroutines.
//   - SolveDistributed — row-block domain decomposition over the comm
//     fabric: scatter, local sweeps, per-sweep halo exchange, max-reduced
//     convergence, ghost-free gather.
//   - SolveHybrid — both axes at once: distributed blocks with pargo bands
//     inside every rank.
//
// All variants share one discretization (5-point stencil, h = 1/(n−1),
// zero initial guess) and one convergence measure (√(h·Σ(cur−prev)²),
// maximized across ranks), so their results and timings are directly
// comparable. Every sweep reads only the previous iterate and writes only
// the new one — Jacobi requires the full-sweep synchronization, and it is
// what makes both the thread bands and the rank blocks race-free.
//
// The distributed building blocks are exported for the direct (Schwarz)
// variant in package schwarz, which replaces the local sweep but keeps
// this package's halo exchange and convergence coordinator:
//
//   - ExchangeHalo — post-sweep ghost-row refresh between adjacent ranks.
//   - Coordinator — barrier + max-allreduce convergence decision, with the
//     cooperative abort protocol (+Inf residual) for per-rank failures.
//
// Termination is convergence or budget exhaustion, nothing else: running
// out of MaxIter is a recorded, reportable outcome (State.MaxIterReached)
// and the partial iterate is still returned. MaxIter 0 reports it without
// running a sweep.
//
// Errors: ErrBadTol, ErrBadMaxIter, ErrBadThreads here; worker-count and
// grid-size validation comes from partition.NewPlan, fabric validation
// from comm. All are configuration errors raised before any iteration.
//
// Complexity: O(MaxIter·n²) work in total for every variant; the parallel
// variants divide it by threads, ranks, or both.
package jacobi
