package schwarz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poisson2d/comm"
	"github.com/katalvlaran/poisson2d/grid"
	"github.com/katalvlaran/poisson2d/jacobi"
	"github.com/katalvlaran/poisson2d/partition"
	"github.com/katalvlaran/poisson2d/problem"
)

// root is the coordinating rank, matching the jacobi solvers.
const root = 0

// SolveDirect runs the distributed direct (Schwarz) iteration: the same
// row-block decomposition, halo exchange and convergence coordination as
// jacobi.SolveDistributed, but each "sweep" solves the block's interior
// exactly against the current ghost and boundary data. With a single
// worker the first solve already produces the exact discrete solution and
// the loop converges on the following iteration.
//
// The scheme is not guaranteed to converge for every (workers, n)
// combination; such runs end with State.MaxIterReached and the partial
// iterate, a reported outcome rather than an error. A failed local
// factorization is an error: the failing rank reports ErrLocalSolve
// wrapped with its rank, after releasing its peers through the
// coordinator's abort protocol.
//
// Complexity: O(MaxIter·n³/P²) time per rank (banded Cholesky per
// iteration), O(n²/P) memory per rank.
func SolveDirect(p problem.Problem, n int, opts jacobi.Options) (jacobi.Result, error) {
	// 1) validate configuration
	if err := opts.Validate(); err != nil {
		return jacobi.Result{}, err
	}
	plan, err := partition.NewPlan(n, opts.Workers)
	if err != nil {
		return jacobi.Result{}, err
	}
	p = p.Normalized()

	// 2) run the rank team
	var out jacobi.Result
	runErr := comm.RunWith(comm.Options{QueueCap: opts.QueueCap}, opts.Workers, func(c *comm.Comm) error {
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

		// 2a) exact local solve ⇄ halo, gated by the shared coordinator
		var (
			rows, _ = local.Dims()
			prev    = mat.NewDense(rows, n, nil)
			h       = 1.0 / float64(n-1)
			off     = plan.Start(c.Rank())
			co      = jacobi.NewCoordinator(c, opts.Tol, opts.MaxIter)
		)
		for co.Continue() {
			prev.Copy(local)
			if err = solveLocal(local, off, h, p.F); err != nil {
				// Release the peers blocked on the reduction, then report.
				co.Abort()

				return fmt.Errorf("rank %d: %w", c.Rank(), err)
			}
			if _, err = co.Observe(grid.DiffNorm(local, prev, h)); err != nil {
				return err
			}
			if co.Aborted() {
				// A peer failed its local solve; it will join no further
				// collective, so leave without the gather.
				return nil
			}
			if err = jacobi.ExchangeHalo(c, plan, local); err != nil {
				return err
			}
		}

		// 2b) reassemble owned rows on the root
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
			out = jacobi.Result{Grid: g, State: co.State(), Residual: co.Residual()}
		}

		return nil
	})
	if runErr != nil {
		return jacobi.Result{}, runErr
	}

	return out, nil
}
