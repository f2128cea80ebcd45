package jacobi

import (
	"math"

	"github.com/katalvlaran/poisson2d/comm"
)

// Coordinator drives the global convergence decision of one distributed
// solve. Every rank owns a Coordinator over the same fabric and feeds it
// one local residual per sweep; the coordinator barriers, reduces the
// residuals with max and applies the all-ranks policy: the solve converges
// only when the worst local residual is below tolerance, so one slow
// subdomain blocks the global declaration.
//
// The same reduction doubles as the cooperative abort channel: a rank that
// cannot continue calls Abort instead of Observe, contributing +Inf, and
// every peer sees Aborted() turn true at that iteration instead of
// blocking forever on a collective the failing rank will never join.
//
// Both the relaxation and the direct (Schwarz) loops run on this type.
type Coordinator struct {
	c        *comm.Comm
	tol      float64
	maxIter  int
	state    ConvergenceState
	residual float64
}

// NewCoordinator returns a coordinator for one solve: state zeroed,
// residual NaN until the first reduction.
func NewCoordinator(c *comm.Comm, tol float64, maxIter int) *Coordinator {
	return &Coordinator{c: c, tol: tol, maxIter: maxIter, residual: math.NaN()}
}

// Continue reports whether another sweep may run. Once the budget is
// exhausted without convergence it records MaxIterReached; a MaxIter of 0
// therefore reports MaxIterReached before any sweep. Purely local: every
// rank reaches the same answer from the same reduction history.
func (co *Coordinator) Continue() bool {
	if co.state.Converged || co.state.MaxIterReached {
		return false
	}
	if co.state.Iterations >= co.maxIter {
		co.state.MaxIterReached = true

		return false
	}

	return true
}

// Observe completes one iteration: barrier (so no rank reduces against a
// stale residual from a peer's previous sweep), then a max-allreduce of
// the local residual. Every rank receives the same global residual and
// updates its state identically.
func (co *Coordinator) Observe(local float64) (float64, error) {
	co.c.Barrier()
	global, err := co.c.AllreduceMax(local)
	if err != nil {
		return 0, err
	}
	co.state.Iterations++
	co.residual = global
	if global < co.tol {
		co.state.Converged = true
	}

	return global, nil
}

// Abort is the failing rank's replacement for Observe: it joins the same
// barrier and reduction but contributes +Inf, releasing every peer with an
// unmistakably non-convergent residual. The caller then returns its own
// error without touching any further collective.
func (co *Coordinator) Abort() {
	co.c.Barrier()
	// The reduction cannot fail on valid ranks; +Inf dominates any residual.
	_, _ = co.c.AllreduceMax(math.Inf(1))
	co.state.Iterations++
	co.residual = math.Inf(1)
}

// Aborted reports whether some rank contributed +Inf to the last
// reduction. Peers that see this must leave the loop without entering
// another collective.
func (co *Coordinator) Aborted() bool { return math.IsInf(co.residual, 1) }

// State returns the convergence bookkeeping accumulated so far.
func (co *Coordinator) State() ConvergenceState { return co.state }

// Residual returns the last global residual, NaN before the first
// reduction.
func (co *Coordinator) Residual() float64 { return co.residual }
