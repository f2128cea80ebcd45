// Package jacobi - iterative Poisson solvers over one shared grid layout.
package jacobi

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/poisson2d/grid"
)

// Sentinel errors for solver configuration. Partition and fabric errors
// (worker counts, grid sizes) are produced by the partition and comm
// packages and pass through unchanged.
var (
	// ErrBadTol indicates a non-positive convergence tolerance.
	ErrBadTol = errors.New("jacobi: tolerance must be positive")
	// ErrBadMaxIter indicates a negative iteration budget.
	ErrBadMaxIter = errors.New("jacobi: max iterations must not be negative")
	// ErrBadThreads indicates a negative thread-batch setting.
	ErrBadThreads = errors.New("jacobi: threads must not be negative")
)

// ConvergenceState records where one solve ended. It is reset at the start
// of every solve and is terminal once either flag is set: Converged when
// the global residual dropped below tolerance, MaxIterReached when the
// iteration budget ran out first. MaxIterReached is a reported outcome,
// not an error — the partial iterate is still returned.
type ConvergenceState struct {
	// Iterations is the number of completed sweeps.
	Iterations int
	// Converged reports that the global residual fell below tolerance.
	Converged bool
	// MaxIterReached reports that the budget ran out without convergence.
	MaxIterReached bool
}

// Result is the outcome of one solve.
type Result struct {
	// Grid is the final iterate, partial if the solve did not converge.
	Grid *grid.Grid
	// State records how the iteration loop ended.
	State ConvergenceState
	// Residual is the last global residual, √(h·Σ(cur−prev)²) maximized
	// across workers. NaN when no sweep ran (MaxIter 0).
	Residual float64
}

// Options configures every solver variant.
//   - Tol: global residual threshold for convergence (default 1e-6).
//   - MaxIter: iteration budget; 0 means report MaxIterReached without
//     running a single sweep (default 1000).
//   - Workers: distributed rank count, 1 ≤ Workers ≤ n (default 1).
//     Ignored by Solve and SolveParallel.
//   - Threads: pargo batch count per parallel region; 0 lets the runtime
//     choose (default 0). Ignored by the purely serial paths.
//   - QueueCap: fabric queue capacity per rank pair (default 4). Ignored
//     by the non-distributed paths.
type Options struct {
	Tol      float64
	MaxIter  int
	Workers  int
	Threads  int
	QueueCap int
}

// DefaultOptions returns the solver defaults described above.
func DefaultOptions() Options {
	return Options{
		Tol:      1e-6,
		MaxIter:  1000,
		Workers:  1,
		Threads:  0,
		QueueCap: 4,
	}
}

// Validate checks the fields every variant shares. Worker-count bounds are
// validated against the grid size by partition.NewPlan on the distributed
// paths.
func (o Options) Validate() error {
	if o.Tol <= 0 {
		return fmt.Errorf("%w: got %g", ErrBadTol, o.Tol)
	}
	if o.MaxIter < 0 {
		return fmt.Errorf("%w: got %d", ErrBadMaxIter, o.MaxIter)
	}
	if o.Threads < 0 {
		return fmt.Errorf("%w: got %d", ErrBadThreads, o.Threads)
	}

	return nil
}
