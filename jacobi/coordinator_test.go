package jacobi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson2d/comm"
	"github.com/katalvlaran/poisson2d/jacobi"
)

// Convergence is all-ranks-or-nobody: one rank above tolerance must block
// the global declaration on every rank.
func TestCoordinator_ConservativePolicy(t *testing.T) {
	const workers = 4
	err := comm.Run(workers, func(c *comm.Comm) error {
		co := jacobi.NewCoordinator(c, 1e-6, 10)

		local := 1e-9 // well converged
		if c.Rank() == 2 {
			local = 0.5 // one synthetic worst-case subdomain
		}
		global, err := co.Observe(local)
		if err != nil {
			return err
		}

		assert.Equal(t, 0.5, global, "rank %d must see the worst residual", c.Rank())
		assert.False(t, co.State().Converged, "rank %d declared convergence with a peer above tolerance", c.Rank())
		assert.Equal(t, 1, co.State().Iterations)

		return nil
	})
	require.NoError(t, err)
}

// Once every rank is below tolerance, all of them must agree on
// convergence in the same iteration.
func TestCoordinator_UnanimousConvergence(t *testing.T) {
	err := comm.Run(3, func(c *comm.Comm) error {
		co := jacobi.NewCoordinator(c, 1e-6, 10)

		if _, err := co.Observe(1e-3); err != nil { // nobody converged yet
			return err
		}
		assert.False(t, co.State().Converged)
		assert.True(t, co.Continue())

		if _, err := co.Observe(1e-9); err != nil {
			return err
		}
		assert.True(t, co.State().Converged)
		assert.False(t, co.Continue())
		assert.Equal(t, 2, co.State().Iterations)
		assert.False(t, co.State().MaxIterReached)

		return nil
	})
	require.NoError(t, err)
}

// A zero budget reports MaxIterReached before any reduction runs.
func TestCoordinator_ZeroBudget(t *testing.T) {
	err := comm.Run(2, func(c *comm.Comm) error {
		co := jacobi.NewCoordinator(c, 1e-6, 0)

		assert.False(t, co.Continue())
		assert.True(t, co.State().MaxIterReached)
		assert.False(t, co.State().Converged)
		assert.True(t, math.IsNaN(co.Residual()))

		return nil
	})
	require.NoError(t, err)
}

// Budget exhaustion: Continue must flip MaxIterReached exactly once the
// iteration count hits the cap.
func TestCoordinator_BudgetExhaustion(t *testing.T) {
	err := comm.Run(2, func(c *comm.Comm) error {
		co := jacobi.NewCoordinator(c, 1e-12, 3)

		for co.Continue() {
			if _, err := co.Observe(1.0); err != nil {
				return err
			}
		}
		assert.Equal(t, 3, co.State().Iterations)
		assert.True(t, co.State().MaxIterReached)
		assert.False(t, co.State().Converged)

		return nil
	})
	require.NoError(t, err)
}

// Abort: the failing rank contributes +Inf through the same reduction;
// every peer observes the abort at that iteration instead of blocking on
// a collective the failing rank will never join.
func TestCoordinator_CooperativeAbort(t *testing.T) {
	const failing = 1
	err := comm.Run(3, func(c *comm.Comm) error {
		co := jacobi.NewCoordinator(c, 1e-6, 10)

		if c.Rank() == failing {
			co.Abort()
			assert.True(t, co.Aborted())

			return nil
		}

		global, err := co.Observe(1e-9)
		if err != nil {
			return err
		}
		assert.True(t, math.IsInf(global, 1), "rank %d must see the abort", c.Rank())
		assert.True(t, co.Aborted())
		assert.False(t, co.State().Converged, "an aborted iteration can never convergence-gate")

		return nil
	})
	require.NoError(t, err)
}
