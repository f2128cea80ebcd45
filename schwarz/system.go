package schwarz

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poisson2d/problem"
)

// solveLocal replaces one relaxation sweep with an exact solve: it
// assembles the 5-point Laplacian over the block's interior unknowns,
// moves every known neighbor (ghost row, boundary row, boundary column)
// to the right-hand side, factorizes and solves, and scatters the
// solution back into the block.
//
// Unknown (i, j) — local row i in [1, rows−1), column j in [1, n−1) — maps
// to index k = (i−1)·(n−2) + (j−1). The matrix is symmetric positive
// definite with semi-bandwidth n−2 (the vertical neighbor offset), so a
// banded Cholesky factorization solves it directly.
//
// The system is rebuilt from scratch on every call: the right-hand side
// depends on the current ghost values, and the observed scheme refreshes
// the whole assembly rather than reusing a fixed-pattern factorization.
//
// rowOff is the global row index of local row 0, used to evaluate f at
// global coordinates. Returns ErrLocalSolve when the factorization fails.
// Complexity: O(rows·n²) per call (banded Cholesky), O(rows·n) memory.
func solveLocal(local *mat.Dense, rowOff int, h float64, f problem.Func2D) error {
	rows, n := local.Dims()
	var (
		ni = rows - 2 // interior rows (unknowns per column)
		nj = n - 2    // interior columns (unknowns per row)
	)
	if ni <= 0 || nj <= 0 {
		// A block of pure ghost/boundary rows has no unknowns.
		return nil
	}

	// 1) assemble the stencil matrix and the boundary-aware right-hand side
	var (
		m  = ni * nj
		a  = mat.NewSymBandDense(m, nj, nil)
		b  = mat.NewVecDense(m, nil)
		hh = h * h
	)
	for i := 1; i <= ni; i++ {
		var (
			x   = float64(rowOff+i) * h
			mid = local.RawRowView(i)
			up  = local.RawRowView(i - 1)
			dn  = local.RawRowView(i + 1)
		)
		for j := 1; j <= nj; j++ {
			var (
				k   = (i-1)*nj + (j - 1)
				rhs = hh * f(x, float64(j)*h)
			)
			a.SetSymBand(k, k, 4)
			if j < nj {
				a.SetSymBand(k, k+1, -1) // right neighbor is an unknown
			} else {
				rhs += mid[n-1] // right boundary column is data
			}
			if j == 1 {
				rhs += mid[0] // left boundary column is data
			}
			if i < ni {
				a.SetSymBand(k, k+nj, -1) // row below is an unknown
			} else {
				rhs += dn[j] // trailing ghost/boundary row is data
			}
			if i == 1 {
				rhs += up[j] // leading ghost/boundary row is data
			}
			b.SetVec(k, rhs)
		}
	}

	// 2) factorize and solve
	var ch mat.BandCholesky
	if ok := ch.Factorize(a); !ok {
		return ErrLocalSolve
	}
	var sol mat.VecDense
	if err := ch.SolveVecTo(&sol, b); err != nil {
		return fmt.Errorf("%w: %v", ErrLocalSolve, err)
	}

	// 3) scatter the solution back into the interior cells
	for i := 1; i <= ni; i++ {
		row := local.RawRowView(i)
		for j := 1; j <= nj; j++ {
			row[j] = sol.AtVec((i-1)*nj + (j - 1))
		}
	}

	return nil
}
