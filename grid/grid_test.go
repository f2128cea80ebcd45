package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/poisson2d/grid"
	"github.com/katalvlaran/poisson2d/problem"
)

// TestNew_Errors verifies that sub-minimal side lengths are rejected.
func TestNew_Errors(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		_, err := grid.New(n)
		assert.ErrorIs(t, err, grid.ErrTooSmall, "n=%d must be rejected", n)
	}
}

// TestNew_ZeroInitialized verifies a fresh grid is all zeros with the
// expected geometry.
func TestNew_ZeroInitialized(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	assert.Equal(t, 5, g.N())
	assert.InDelta(t, 0.25, g.H(), 1e-15, "h must be 1/(n-1)")
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			assert.Zero(t, g.At(i, j))
		}
	}
}

// TestFromDense_Validation exercises the three constructor sentinels.
func TestFromDense_Validation(t *testing.T) {
	_, err := grid.FromDense(nil)
	assert.ErrorIs(t, err, grid.ErrNilMatrix)

	_, err = grid.FromDense(mat.NewDense(2, 3, nil))
	assert.ErrorIs(t, err, grid.ErrNotSquare)

	_, err = grid.FromDense(mat.NewDense(1, 1, nil))
	assert.ErrorIs(t, err, grid.ErrTooSmall)
}

// TestFromDense_Copies verifies the constructor deep-copies its input.
func TestFromDense_Copies(t *testing.T) {
	src := mat.NewDense(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	g, err := grid.FromDense(src)
	require.NoError(t, err)

	src.Set(1, 1, -99)
	assert.Equal(t, 5.0, g.At(1, 1), "grid must not alias the source matrix")
}

// TestClone_Independent verifies clones share no storage.
func TestClone_Independent(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)
	g.Set(2, 2, 7)

	c := g.Clone()
	c.Set(2, 2, -1)

	assert.Equal(t, 7.0, g.At(2, 2))
	assert.Equal(t, -1.0, c.At(2, 2))
}

// TestCoord maps corner and interior cells to normalized coordinates.
func TestCoord(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	x, y := g.Coord(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = g.Coord(4, 4)
	assert.InDelta(t, 1, x, 1e-15)
	assert.InDelta(t, 1, y, 1e-15)

	x, y = g.Coord(1, 3)
	assert.InDelta(t, 0.25, x, 1e-15)
	assert.InDelta(t, 0.75, y, 1e-15)
}

// TestFill tabulates a separable function and probes a few cells.
func TestFill(t *testing.T) {
	g, err := grid.New(3)
	require.NoError(t, err)

	g.Fill(func(x, y float64) float64 { return x + 10*y })

	assert.InDelta(t, 0.0, g.At(0, 0), 1e-15)
	assert.InDelta(t, 0.5+10*1.0, g.At(1, 2), 1e-15)
	assert.InDelta(t, 1.0+10*0.5, g.At(2, 1), 1e-15)
}

// TestApplyBoundary_EdgesOnly verifies every edge cell carries its boundary
// value and the interior stays untouched.
func TestApplyBoundary_EdgesOnly(t *testing.T) {
	g, err := grid.New(4)
	require.NoError(t, err)

	p := problem.Problem{
		Top:    func(_, _ float64) float64 { return 1 },
		Bottom: func(_, _ float64) float64 { return 2 },
		Left:   func(_, _ float64) float64 { return 3 },
		Right:  func(_, _ float64) float64 { return 4 },
	}
	g.ApplyBoundary(p)

	// Interior untouched.
	assert.Zero(t, g.At(1, 1))
	assert.Zero(t, g.At(2, 2))

	// Non-corner edge cells.
	assert.Equal(t, 1.0, g.At(0, 1), "top edge")
	assert.Equal(t, 2.0, g.At(3, 2), "bottom edge")
	assert.Equal(t, 3.0, g.At(1, 0), "left edge")
	assert.Equal(t, 4.0, g.At(2, 3), "right edge")

	// Corners: the vertical edges write last.
	assert.Equal(t, 3.0, g.At(0, 0))
	assert.Equal(t, 4.0, g.At(0, 3))
	assert.Equal(t, 3.0, g.At(3, 0))
	assert.Equal(t, 4.0, g.At(3, 3))
}

// TestApplyBoundary_Coordinates verifies each edge function sees the true
// coordinates of its own edge.
func TestApplyBoundary_Coordinates(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	p := problem.Problem{
		Top:    func(x, y float64) float64 { require.Zero(t, x); return y },
		Bottom: func(x, y float64) float64 { require.Equal(t, 1.0, x); return y },
		Left:   func(x, y float64) float64 { require.Zero(t, y); return x },
		Right:  func(x, y float64) float64 { require.Equal(t, 1.0, y); return x },
	}
	g.ApplyBoundary(p)

	assert.InDelta(t, 0.5, g.At(0, 2), 1e-15, "top row carries y")
	assert.InDelta(t, 0.5, g.At(4, 2), 1e-15, "bottom row carries y")
	assert.InDelta(t, 0.25, g.At(1, 0), 1e-15, "left column carries x")
	assert.InDelta(t, 0.75, g.At(3, 4), 1e-15, "right column carries x")
}
