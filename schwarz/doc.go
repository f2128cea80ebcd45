// Package schwarz implements the distributed direct variant of the
// Poisson benchmark: a Schwarz-type domain decomposition where every
// iteration solves each rank's subdomain exactly instead of relaxing it.
//
// What:
//
//   - SolveDirect splits the grid into the same row blocks as
//     jacobi.SolveDistributed, but the local step assembles the 5-point
//     Laplacian over the block's interior unknowns as a banded symmetric
//     positive-definite system — known ghost/boundary neighbors move to
//     the right-hand side — and solves it with a banded Cholesky
//     factorization.
//   - The halo exchange, convergence coordinator, and scatter/gather are
//     shared with package jacobi: only the local step differs.
//
// Why:
//
//   - One exact subdomain solve propagates information across a whole
//     block at once, so far fewer (much more expensive) iterations are
//     needed than with pointwise relaxation; the benchmark compares the
//     trade.
//
// Known instability: alternating exact local solves against lagged
// neighbor data is not guaranteed to converge for every (workers, n)
// combination — larger grids at higher worker counts can stall. This is
// expected behavior, surfaced as State.MaxIterReached with the partial
// iterate returned, never masked as success or inflated into an error.
//
// The local system is rebuilt and refactorized every iteration even
// though only its right-hand side changes between Schwarz sweeps; the
// fixed-pattern reuse optimization is deliberately not taken, preserving
// the observed one-assembly-per-iteration scheme.
//
// Errors: ErrLocalSolve when a rank's factorization fails (singular or
// ill-conditioned local system). The failing rank first contributes +Inf
// to the convergence reduction so its peers exit cleanly, then reports
// the error wrapped with its rank; no rank is left blocked on a
// collective.
package schwarz
