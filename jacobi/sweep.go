package jacobi

import (
	"github.com/exascience/pargo/parallel"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poisson2d/problem"
)

// sweepRows applies one Jacobi update to local rows [lo, hi) of a block:
//
//	cur[i,j] = 0.25·(prev[i−1,j] + prev[i+1,j] + prev[i,j−1] + prev[i,j+1] + h²·f)
//
// for interior columns 1..n−2. The kernel reads prev only and writes cur
// only, so disjoint row ranges may run concurrently. rowOff is the global
// row index of local row 0: the forcing term is evaluated at the global
// coordinates ((rowOff+i)·h, j·h), never at the local index.
//
// Callers keep lo ≥ 1 and hi ≤ rows−1 so the extreme rows of the block
// (boundary or ghost) are never written.
func sweepRows(cur, prev *mat.Dense, lo, hi, rowOff int, h float64, f problem.Func2D) {
	_, n := cur.Dims()
	hh := h * h
	for i := lo; i < hi; i++ {
		var (
			dst = cur.RawRowView(i)
			mid = prev.RawRowView(i)
			up  = prev.RawRowView(i - 1)
			dn  = prev.RawRowView(i + 1)
			x   = float64(rowOff+i) * h
		)
		for j := 1; j < n-1; j++ {
			dst[j] = 0.25 * (up[j] + dn[j] + mid[j-1] + mid[j+1] + hh*f(x, float64(j)*h))
		}
	}
}

// sweepRowsParallel splits sweepRows over pargo row bands. batches selects
// the band count, 0 lets the runtime decide. Bands write disjoint rows of
// cur and only read prev, so there are no write conflicts by construction.
func sweepRowsParallel(cur, prev *mat.Dense, lo, hi, rowOff int, h float64, f problem.Func2D, batches int) {
	parallel.Range(lo, hi, batches, func(low, high int) {
		sweepRows(cur, prev, low, high, rowOff, h, f)
	})
}
