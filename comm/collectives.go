package comm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poisson2d/partition"
)

// Collectives. Every rank of the fabric must call the same collective in
// the same order; mixing them up surfaces as ErrUnexpectedMessage rather
// than silent data corruption.

// AllreduceMax combines x across all ranks with max and returns the global
// maximum on every rank. The reduction runs on a ring: each of the P−1
// rounds forwards the running maximum to the next rank and folds in the
// previous rank's. NaN and +Inf propagate, which is what the convergence
// protocol relies on (a failing rank contributes +Inf to abort everyone).
// Complexity: O(P) rounds per rank.
func (c *Comm) AllreduceMax(x float64) (float64, error) {
	if c.fab.size == 1 {
		return x, nil
	}
	var (
		next = (c.rank + 1) % c.fab.size
		prev = (c.rank - 1 + c.fab.size) % c.fab.size
		v    = x
	)
	for round := 0; round < c.fab.size-1; round++ {
		if err := c.send(next, message{kind: kindScalar, vals: []float64{v}}); err != nil {
			return 0, err
		}
		m, err := c.recv(prev, kindScalar)
		if err != nil {
			return 0, err
		}
		v = math.Max(v, m.vals[0])
	}

	return v, nil
}

// BroadcastString distributes s from the root to every rank and returns
// the root's value on all of them. Non-root callers pass their own s,
// which is ignored.
func (c *Comm) BroadcastString(root int, s string) (string, error) {
	if root < 0 || root >= c.fab.size {
		return "", fmt.Errorf("%w: rank %d of %d", ErrRootOutOfRange, root, c.fab.size)
	}
	if c.rank == root {
		for r := 0; r < c.fab.size; r++ {
			if r == root {
				continue
			}
			if err := c.send(r, message{kind: kindString, str: s}); err != nil {
				return "", err
			}
		}

		return s, nil
	}

	m, err := c.recv(root, kindString)
	if err != nil {
		return "", err
	}

	return m.str, nil
}

// ScatterRows hands every rank its local block of the root's global grid,
// ghost padding rows included, and returns it as a Rows(r)×n matrix. The
// root passes the n×n global matrix; every other rank passes nil.
//
// Returns ErrPlanMismatch when the plan was built for a different worker
// count, ErrNilGlobal when the root has nothing to scatter. The root's own
// block is deep-copied so the loop cannot alias the global grid.
func (c *Comm) ScatterRows(root int, global *mat.Dense, plan *partition.Plan) (*mat.Dense, error) {
	if root < 0 || root >= c.fab.size {
		return nil, fmt.Errorf("%w: rank %d of %d", ErrRootOutOfRange, root, c.fab.size)
	}
	if plan.Workers() != c.fab.size {
		return nil, fmt.Errorf("%w: plan for %d, fabric of %d", ErrPlanMismatch, plan.Workers(), c.fab.size)
	}
	n := plan.N()

	if c.rank != root {
		m, err := c.recv(root, kindBlock)
		if err != nil {
			return nil, err
		}
		rows := plan.Rows(c.rank)
		if len(m.vals) != rows*n {
			return nil, fmt.Errorf("%w: block of %d values, want %d", ErrUnexpectedMessage, len(m.vals), rows*n)
		}

		return mat.NewDense(rows, n, m.vals), nil
	}

	if global == nil {
		return nil, ErrNilGlobal
	}
	for r := 0; r < c.fab.size; r++ {
		if r == root {
			continue
		}
		if err := c.send(r, message{kind: kindBlock, vals: flattenRows(global, plan.Start(r), plan.Rows(r), n)}); err != nil {
			return nil, err
		}
	}

	return mat.NewDense(plan.Rows(root), n, flattenRows(global, plan.Start(root), plan.Rows(root), n)), nil
}

// GatherOwned reassembles the global grid from every rank's owned rows.
// Ghost rows never travel, so block-boundary rows cannot be double-counted:
// each global row is written by exactly the rank that owns it. The root
// returns the assembled n×n matrix; every other rank returns nil.
func (c *Comm) GatherOwned(root int, local *mat.Dense, plan *partition.Plan) (*mat.Dense, error) {
	if root < 0 || root >= c.fab.size {
		return nil, fmt.Errorf("%w: rank %d of %d", ErrRootOutOfRange, root, c.fab.size)
	}
	if plan.Workers() != c.fab.size {
		return nil, fmt.Errorf("%w: plan for %d, fabric of %d", ErrPlanMismatch, plan.Workers(), c.fab.size)
	}
	var (
		n      = plan.N()
		lo, hi = plan.OwnedRange(c.rank)
	)

	if c.rank != root {
		return nil, c.send(root, message{kind: kindBlock, vals: flattenRows(local, lo, hi-lo, n)})
	}

	out := mat.NewDense(n, n, nil)
	for i := lo; i < hi; i++ {
		copy(out.RawRowView(plan.OwnedStart(c.rank)+i-lo), local.RawRowView(i))
	}
	for peer := 0; peer < c.fab.size; peer++ {
		if peer == root {
			continue
		}
		m, err := c.recv(peer, kindBlock)
		if err != nil {
			return nil, err
		}
		owned := plan.Owned(peer)
		if len(m.vals) != owned*n {
			return nil, fmt.Errorf("%w: block of %d values from rank %d, want %d", ErrUnexpectedMessage, len(m.vals), peer, owned*n)
		}
		base := plan.OwnedStart(peer)
		for k := 0; k < owned; k++ {
			copy(out.RawRowView(base+k), m.vals[k*n:(k+1)*n])
		}
	}

	return out, nil
}

// flattenRows copies count rows of m starting at row start into one
// contiguous slice of count·n values.
func flattenRows(m *mat.Dense, start, count, n int) []float64 {
	flat := make([]float64, count*n)
	for k := 0; k < count; k++ {
		copy(flat[k*n:(k+1)*n], m.RawRowView(start+k))
	}

	return flat
}
