package grid

import (
	"math"

	"github.com/exascience/pargo/parallel"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poisson2d/problem"
)

// Norms in this file all use the same scaling,
//
//	‖d‖ = √(h·Σ d²),
//
// the discrete L2 measure the solvers use both as the per-iteration
// residual (d = current − previous iterate) and as the accuracy report
// (d = computed − exact). The sum runs over every cell of the operand,
// boundary rows included; fixed rows contribute zero to a residual because
// they never change between iterates.

// L2Diff returns the discrete L2 norm of a−b, √(h·Σ(a−b)²) over all cells.
// Returns ErrDimensionMismatch when the grids differ in side length.
// Complexity: O(n²).
func L2Diff(a, b *Grid) (float64, error) {
	if a.n != b.n {
		return 0, ErrDimensionMismatch
	}

	return DiffNorm(a.data, b.data, a.H()), nil
}

// L2Error returns the discrete L2 norm of g−exact, evaluating exact at
// every cell coordinate. Returns ErrNilFunc when exact is nil (an unknown
// analytic solution admits no error).
// Complexity: O(n²) evaluations.
func L2Error(g *Grid, exact problem.Func2D) (float64, error) {
	if exact == nil {
		return 0, ErrNilFunc
	}
	h := g.H()
	var (
		sum  float64
		d    float64
		row  []float64
		i, j int
	)
	for i = 0; i < g.n; i++ {
		row = g.data.RawRowView(i)
		x := float64(i) * h
		for j = 0; j < g.n; j++ {
			d = row[j] - exact(x, float64(j)*h)
			sum += d * d
		}
	}

	return math.Sqrt(h * sum), nil
}

// DiffNorm returns √(h·Σ(cur−prev)²) over every cell of two equally-shaped
// matrices. It is the residual kernel for local blocks, which are
// rectangular rows×n slabs rather than square grids; h stays the global
// mesh width. Mismatched shapes panic (programming error).
// Complexity: O(rows·cols).
func DiffNorm(cur, prev *mat.Dense, h float64) float64 {
	rows, _ := cur.Dims()
	var (
		sum float64
		d   float64
		i   int
	)
	for i = 0; i < rows; i++ {
		d = floats.Distance(cur.RawRowView(i), prev.RawRowView(i), 2)
		sum += d * d
	}

	return math.Sqrt(h * sum)
}

// DiffNormParallel is DiffNorm with the row loop split into batches of a
// pargo range reduction. batches selects the number of bands; 0 lets the
// runtime decide. The result is identical to DiffNorm up to floating-point
// summation order.
// Complexity: O(rows·cols) work, O(rows/batches) span.
func DiffNormParallel(cur, prev *mat.Dense, h float64, batches int) float64 {
	rows, _ := cur.Dims()
	sum := parallel.RangeReduceFloat64(
		0, rows, batches,
		func(low, high int) float64 {
			var s, d float64
			for i := low; i < high; i++ {
				d = floats.Distance(cur.RawRowView(i), prev.RawRowView(i), 2)
				s += d * d
			}

			return s
		},
		func(a, b float64) float64 { return a + b },
	)

	return math.Sqrt(h * sum)
}
