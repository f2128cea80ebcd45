// Package grid stores the discrete solution field of a 2D Poisson problem
// and provides the discrete norms the solvers converge and report with.
//
// What:
//
//   - Grid wraps a dense n×n matrix over the unit square; cell (i, j) sits
//     at (i·h, j·h) with h = 1/(n−1), row index along x, column index along y.
//   - ApplyBoundary writes the four Dirichlet edges of a problem.Problem.
//   - Fill tabulates any Func2D over the whole field (exact grids, tests).
//   - L2Diff / L2Error / DiffNorm compute √(h·Σ d²), the scaled L2 measure
//     used as both residual and accuracy report; DiffNormParallel is the
//     same reduction over pargo row bands.
//
// Why:
//
//   - Every solver variant (serial, threaded, distributed, direct) shares
//     this one storage layout, so their results are directly comparable.
//   - Local blocks in the distributed solvers are plain rows×n matrices;
//     DiffNorm accepts those directly, keeping one residual definition.
//
// Errors:
//
//   - ErrTooSmall: side length below 2.
//   - ErrNotSquare, ErrNilMatrix: invalid FromDense input.
//   - ErrDimensionMismatch: L2Diff over grids of different sizes.
//   - ErrNilFunc: L2Error against an unknown exact solution.
//
// Out-of-range cell access panics, matching gonum's dense matrix semantics:
// index errors are programming errors, not recoverable conditions.
package grid
