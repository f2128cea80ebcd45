package jacobi

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poisson2d/grid"
	"github.com/katalvlaran/poisson2d/problem"
)

// Solve runs the single-threaded Jacobi iteration for −Δu = f on an n×n
// grid with the Dirichlet data of p, starting from the zero initial guess.
//
// Each sweep reads the previous iterate and writes a fresh one (never in
// place), then the residual √(h·Σ(cur−prev)²) gates convergence against
// opts.Tol. Exhausting opts.MaxIter is not an error: the partial iterate
// is returned with State.MaxIterReached set.
//
// Returns grid or option configuration errors before any iteration runs.
// Complexity: O(MaxIter·n²) time, O(n²) memory.
func Solve(p problem.Problem, n int, opts Options) (Result, error) {
	return solveShared(p, n, opts, false)
}

// SolveParallel is Solve with the sweep and the residual reduction split
// across pargo row bands inside one process. Semantics and results are
// identical to Solve up to floating-point summation order in the residual;
// opts.Threads selects the band count (0 = runtime default).
// Complexity: O(MaxIter·n²) work, O(n²/Threads) span per sweep.
func SolveParallel(p problem.Problem, n int, opts Options) (Result, error) {
	return solveShared(p, n, opts, true)
}

// solveShared is the one shared-memory loop behind Solve and SolveParallel.
// The threading strategy is chosen here, once, not inside the sweep body.
func solveShared(p problem.Problem, n int, opts Options, threaded bool) (Result, error) {
	// 1) validate configuration and set up the two iterates
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	g, err := grid.New(n)
	if err != nil {
		return Result{}, err
	}
	p = p.Normalized()
	g.ApplyBoundary(p)

	var (
		cur  = g.Dense()
		prev = mat.NewDense(n, n, nil)
		h    = g.H()
		st   ConvergenceState
		res  = math.NaN()
	)

	// 2) sweep until the residual drops below tolerance or the budget ends
	for st.Iterations < opts.MaxIter {
		prev.Copy(cur)
		if threaded {
			sweepRowsParallel(cur, prev, 1, n-1, 0, h, p.F, opts.Threads)
			res = grid.DiffNormParallel(cur, prev, h, opts.Threads)
		} else {
			sweepRows(cur, prev, 1, n-1, 0, h, p.F)
			res = grid.DiffNorm(cur, prev, h)
		}
		st.Iterations++
		if res < opts.Tol {
			st.Converged = true
			break
		}
	}
	if !st.Converged {
		st.MaxIterReached = true
	}

	return Result{Grid: g, State: st, Residual: res}, nil
}
