// Package grid provides the square field on which the Poisson solvers
// operate. A Grid stores the discrete solution uₕ over the unit square,
// with cell (i, j) sitting at the normalized coordinates (i·h, j·h),
// h = 1/(n−1): the row index runs along x, the column index along y.
package grid

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poisson2d/problem"
)

// Grid is a dense n×n field of real values over [0,1]². The zero value is
// not usable; construct one with New, FromDense or Clone.
type Grid struct {
	n    int
	data *mat.Dense
}

// New returns an all-zero n×n grid.
// Returns ErrTooSmall if n < 2 (a 2×2 grid is pure boundary, the smallest
// well-formed field).
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 2 {
		return nil, ErrTooSmall
	}

	return &Grid{n: n, data: mat.NewDense(n, n, nil)}, nil
}

// FromDense builds a grid from a square matrix. The input is deep-copied so
// later mutation of d cannot corrupt the grid.
// Returns ErrNilMatrix for a nil input, ErrNotSquare when rows ≠ cols,
// ErrTooSmall when the side length is below 2.
// Complexity: O(n²) time and memory.
func FromDense(d *mat.Dense) (*Grid, error) {
	if d == nil {
		return nil, ErrNilMatrix
	}
	r, c := d.Dims()
	if r != c {
		return nil, ErrNotSquare
	}
	if r < 2 {
		return nil, ErrTooSmall
	}
	cp := mat.NewDense(r, c, nil)
	cp.Copy(d)

	return &Grid{n: r, data: cp}, nil
}

// Clone returns an independent deep copy of g.
// Complexity: O(n²) time and memory.
func (g *Grid) Clone() *Grid {
	cp := mat.NewDense(g.n, g.n, nil)
	cp.Copy(g.data)

	return &Grid{n: g.n, data: cp}
}

// N reports the side length of the grid.
// Complexity: O(1).
func (g *Grid) N() int { return g.n }

// H reports the mesh width h = 1/(n−1).
// Complexity: O(1).
func (g *Grid) H() float64 { return 1.0 / float64(g.n-1) }

// At returns the value at cell (i, j). Out-of-range indices panic, as in
// gonum: index errors are programming errors, not recoverable conditions.
// Complexity: O(1).
func (g *Grid) At(i, j int) float64 { return g.data.At(i, j) }

// Set stores v at cell (i, j). Out-of-range indices panic.
// Complexity: O(1).
func (g *Grid) Set(i, j int, v float64) { g.data.Set(i, j, v) }

// Coord maps cell (i, j) to its normalized coordinates (x, y) = (i·h, j·h).
// Complexity: O(1).
func (g *Grid) Coord(i, j int) (x, y float64) {
	h := g.H()

	return float64(i) * h, float64(j) * h
}

// Dense exposes the live backing matrix, not a copy. Solver kernels use it
// for row-view sweeps; treat it as borrowed storage owned by the grid.
// Complexity: O(1).
func (g *Grid) Dense() *mat.Dense { return g.data }

// Fill evaluates f at every cell coordinate and stores the result,
// overwriting the previous content. A nil f is treated as the zero function.
// Complexity: O(n²) evaluations.
func (g *Grid) Fill(f problem.Func2D) {
	if f == nil {
		f = problem.ZeroFunc
	}
	h := g.H()
	var (
		i, j int
		row  []float64
		x    float64
	)
	for i = 0; i < g.n; i++ {
		row = g.data.RawRowView(i)
		x = float64(i) * h
		for j = 0; j < g.n; j++ {
			row[j] = f(x, float64(j)*h)
		}
	}
}

// ApplyBoundary writes the four Dirichlet edges of p onto the grid:
// Top along row 0 (x = 0), Bottom along row n−1 (x = 1), Left along
// column 0 (y = 0), Right along column n−1 (y = 1). Each function is
// evaluated at the true coordinates of its edge cells. Corners are written
// twice; the vertical edges write last, so for well-posed data (functions
// agreeing at corners) the result is unambiguous.
// Complexity: O(n) evaluations.
func (g *Grid) ApplyBoundary(p problem.Problem) {
	p = p.Normalized()
	h := g.H()
	var (
		i int
		t float64 // running edge coordinate i·h
	)
	for i = 0; i < g.n; i++ {
		t = float64(i) * h
		g.data.Set(0, i, p.Top(0, t))
		g.data.Set(g.n-1, i, p.Bottom(1, t))
	}
	for i = 0; i < g.n; i++ {
		t = float64(i) * h
		g.data.Set(i, 0, p.Left(t, 0))
		g.data.Set(i, g.n-1, p.Right(t, 1))
	}
}
