package jacobi

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poisson2d/comm"
	"github.com/katalvlaran/poisson2d/grid"
	"github.com/katalvlaran/poisson2d/partition"
	"github.com/katalvlaran/poisson2d/problem"
)

// root is the coordinating rank of every distributed solve: it owns the
// global grid during scatter and gather and carries the Result out.
const root = 0

// SolveDistributed runs the Jacobi iteration across opts.Workers ranks on
// an in-process message-passing fabric. The grid is split into contiguous
// row blocks (one ghost row per internal block boundary), scattered from
// the root, relaxed locally with serial sweeps, and stitched together by a
// halo exchange after every sweep; convergence is a max-reduction of the
// local residuals, so it is declared only when every rank is below
// tolerance. The root gathers the owned rows back into the returned grid.
//
// Workers = 1 degenerates to a single ghost-free block and is numerically
// identical to Solve.
//
// Returns configuration errors (options, worker count vs. grid size)
// before the fabric starts.
// Complexity: O(MaxIter·n²/P) time per rank, O(n²/P) memory per rank.
func SolveDistributed(p problem.Problem, n int, opts Options) (Result, error) {
	return solveDistributed(p, n, opts, false)
}

// SolveHybrid combines both parallelism axes: the distributed row-block
// decomposition of SolveDistributed with pargo-banded sweeps and residual
// reductions inside every rank. opts.Threads selects the per-rank band
// count. Results agree with SolveDistributed up to floating-point
// summation order.
func SolveHybrid(p problem.Problem, n int, opts Options) (Result, error) {
	return solveDistributed(p, n, opts, true)
}

// solveDistributed is the one distributed loop behind both variants; the
// per-rank threading strategy is fixed here, once, before the loop.
func solveDistributed(p problem.Problem, n int, opts Options, threaded bool) (Result, error) {
	// 1) validate configuration; the plan also bounds Workers against n
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	plan, err := partition.NewPlan(n, opts.Workers)
	if err != nil {
		return Result{}, err
	}
	p = p.Normalized()

	// 2) run the rank team; only the root writes out
	var out Result
	runErr := comm.RunWith(comm.Options{QueueCap: opts.QueueCap}, opts.Workers, func(c *comm.Comm) error {
		// 2a) root builds the initial iterate: zero guess + Dirichlet edges
		var global *mat.Dense
		if c.Rank() == root {
			g, err := grid.New(n)
			if err != nil {
				return err
			}
			g.ApplyBoundary(p)
			global = g.Dense()
		}
		local, err := c.ScatterRows(root, global, plan)
		if err != nil {
			return err
		}

		// 2b) sweep ⇄ halo, gated by the shared coordinator
		var (
			rows, _ = local.Dims()
			prev    = mat.NewDense(rows, n, nil)
			h       = 1.0 / float64(n-1)
			off     = plan.Start(c.Rank())
			co      = NewCoordinator(c, opts.Tol, opts.MaxIter)
			res     float64
		)
		for co.Continue() {
			prev.Copy(local)
			if threaded {
				sweepRowsParallel(local, prev, 1, rows-1, off, h, p.F, opts.Threads)
				res = grid.DiffNormParallel(local, prev, h, opts.Threads)
			} else {
				sweepRows(local, prev, 1, rows-1, off, h, p.F)
				res = grid.DiffNorm(local, prev, h)
			}
			if _, err = co.Observe(res); err != nil {
				return err
			}
			// Ghost rows refresh even on the final iteration; every rank
			// leaves the loop after the same exchange count.
			if err = ExchangeHalo(c, plan, local); err != nil {
				return err
			}
		}

		// 2c) reassemble owned rows on the root
		c.Barrier()
		full, err := c.GatherOwned(root, local, plan)
		if err != nil {
			return err
		}
		if c.Rank() == root {
			g, err := grid.FromDense(full)
			if err != nil {
				return err
			}
			out = Result{Grid: g, State: co.State(), Residual: co.Residual()}
		}

		return nil
	})
	if runErr != nil {
		return Result{}, runErr
	}

	return out, nil
}
