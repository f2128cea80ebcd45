package vtk_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson2d/grid"
	"github.com/katalvlaran/poisson2d/vtk"
)

// golden output for a 2×2 grid holding {1, 2; 3, 4}: exact byte layout,
// including the separator blank lines between points and point data.
const golden = `# vtk DataFile Version 3.0
vtk output
ASCII
DATASET STRUCTURED_GRID
DIMENSIONS 2 2 1
POINTS 4 float
0 0 0
0 0.5 0
0.5 0 0
0.5 0.5 0


POINT_DATA 4
SCALARS values float
LOOKUP_TABLE default
1
2
3
4
`

func testGrid(t *testing.T) *grid.Grid {
	t.Helper()
	g, err := grid.New(2)
	require.NoError(t, err)
	g.Set(0, 0, 1)
	g.Set(0, 1, 2)
	g.Set(1, 0, 3)
	g.Set(1, 1, 4)

	return g
}

func TestWrite_Golden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, vtk.Write(&buf, testGrid(t)))
	assert.Equal(t, golden, buf.String())
}

func TestWrite_NilGrid(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, vtk.Write(&buf, nil), vtk.ErrNilGrid)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.vtk")
	require.NoError(t, vtk.WriteFile(path, testGrid(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, golden, string(data))
}

// Larger grids must stay structurally sound: counts in the header match
// the emitted line counts.
func TestWrite_Structure(t *testing.T) {
	g, err := grid.New(5)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, vtk.Write(&buf, g))

	out := buf.String()
	assert.Contains(t, out, "DIMENSIONS 5 5 1")
	assert.Contains(t, out, "POINTS 25 float")
	assert.Contains(t, out, "POINT_DATA 25")
	// 6 header lines + 25 points + 2 separators + 3 field headers + 25 values.
	assert.Equal(t, 6+25+2+3+25, strings.Count(out, "\n"))
}
