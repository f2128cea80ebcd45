package jacobi_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson2d/grid"
	"github.com/katalvlaran/poisson2d/jacobi"
	"github.com/katalvlaran/poisson2d/problem"
)

func TestOptions_Validate(t *testing.T) {
	opts := jacobi.DefaultOptions()
	require.NoError(t, opts.Validate())

	bad := opts
	bad.Tol = 0
	assert.ErrorIs(t, bad.Validate(), jacobi.ErrBadTol)

	bad = opts
	bad.MaxIter = -1
	assert.ErrorIs(t, bad.Validate(), jacobi.ErrBadMaxIter)

	bad = opts
	bad.Threads = -2
	assert.ErrorIs(t, bad.Validate(), jacobi.ErrBadThreads)
}

// The zero problem is a fixed point: one sweep of the zero grid must leave
// it exactly zero and converge immediately.
func TestSolve_ZeroProblemIsFixedPoint(t *testing.T) {
	opts := jacobi.DefaultOptions()
	opts.MaxIter = 5

	res, err := jacobi.Solve(problem.Zero(), 8, opts)
	require.NoError(t, err)

	assert.True(t, res.State.Converged)
	assert.Equal(t, 1, res.State.Iterations)
	assert.Zero(t, res.Residual)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.Zero(t, res.Grid.At(i, j), "cell (%d,%d)", i, j)
		}
	}
}

// MaxIter = 0 must report MaxIterReached without attempting a sweep.
func TestSolve_ZeroBudget(t *testing.T) {
	opts := jacobi.DefaultOptions()
	opts.MaxIter = 0

	res, err := jacobi.Solve(problem.Manufactured(), 16, opts)
	require.NoError(t, err)

	assert.True(t, res.State.MaxIterReached)
	assert.False(t, res.State.Converged)
	assert.Zero(t, res.State.Iterations)
	assert.True(t, math.IsNaN(res.Residual), "no sweep ran, residual must be NaN")
}

// A hopeless budget must return the partial iterate, reported as
// non-converged, never an error.
func TestSolve_NonConvergenceIsReportedNotFailed(t *testing.T) {
	opts := jacobi.DefaultOptions()
	opts.MaxIter = 3
	opts.Tol = 1e-14

	res, err := jacobi.Solve(problem.Manufactured(), 32, opts)
	require.NoError(t, err)

	assert.True(t, res.State.MaxIterReached)
	assert.False(t, res.State.Converged)
	assert.Equal(t, 3, res.State.Iterations)
	require.NotNil(t, res.Grid, "partial iterate must be returned")
	assert.Greater(t, res.Residual, opts.Tol)
}

// Second-order accuracy: the L2 error against the manufactured solution
// must shrink as n doubles from 8 to 64.
func TestSolve_ManufacturedConvergenceOrder(t *testing.T) {
	opts := jacobi.DefaultOptions()
	opts.Tol = 1e-9
	opts.MaxIter = 50000

	var last = math.Inf(1)
	for _, n := range []int{8, 16, 32, 64} {
		res, err := jacobi.Solve(problem.Manufactured(), n, opts)
		require.NoError(t, err)
		require.True(t, res.State.Converged, "n=%d must converge within the budget", n)

		e, err := grid.L2Error(res.Grid, problem.Manufactured().Exact)
		require.NoError(t, err)
		assert.Less(t, e, last, "L2 error must shrink when n doubles to %d", n)
		last = e
	}
}

// SolveParallel must agree with Solve: same sweeps, same convergence, same
// grid up to floating-point summation order in the residual.
func TestSolveParallel_MatchesSerial(t *testing.T) {
	const n = 24
	opts := jacobi.DefaultOptions()
	opts.Tol = 1e-7
	opts.MaxIter = 20000

	serial, err := jacobi.Solve(problem.Manufactured(), n, opts)
	require.NoError(t, err)
	require.True(t, serial.State.Converged)

	popts := opts
	popts.Threads = 4
	par, err := jacobi.SolveParallel(problem.Manufactured(), n, popts)
	require.NoError(t, err)
	require.True(t, par.State.Converged)

	d, err := grid.L2Diff(serial.Grid, par.Grid)
	require.NoError(t, err)
	assert.Less(t, d, 1e-6, "banded sweeps must reproduce the serial iterate")
}
