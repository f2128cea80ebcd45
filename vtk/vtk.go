// Package vtk exports solution grids as legacy ASCII VTK files.
package vtk

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/poisson2d/grid"
)

// ErrNilGrid indicates a nil grid passed to the writer.
var ErrNilGrid = errors.New("vtk: grid must not be nil")

// Write emits g as a legacy ASCII VTK structured-grid dataset: one point
// per cell at coordinates (i/n, j/n, 0) followed by the cell values as a
// scalar field. The i/n scaling (rather than i/(n−1)) is the layout the
// downstream visualization tooling expects and is kept as is.
// Complexity: O(n²) output lines.
func Write(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return ErrNilGrid
	}
	var (
		n  = g.N()
		bw = bufio.NewWriter(w)
	)

	// 1) header and point coordinates
	fmt.Fprintf(bw, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(bw, "vtk output\n")
	fmt.Fprintf(bw, "ASCII\n")
	fmt.Fprintf(bw, "DATASET STRUCTURED_GRID\n")
	fmt.Fprintf(bw, "DIMENSIONS %d %d 1\n", n, n)
	fmt.Fprintf(bw, "POINTS %d float\n", n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fmt.Fprintf(bw, "%.8g %.8g 0\n", float64(i)/float64(n), float64(j)/float64(n))
		}
	}

	// 2) scalar field
	fmt.Fprintf(bw, "\n\n")
	fmt.Fprintf(bw, "POINT_DATA %d\n", n*n)
	fmt.Fprintf(bw, "SCALARS values float\n")
	fmt.Fprintf(bw, "LOOKUP_TABLE default\n")
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fmt.Fprintf(bw, "%.8g\n", g.At(i, j))
		}
	}

	return bw.Flush()
}

// WriteFile writes g to the named file, creating or truncating it.
func WriteFile(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("vtk: create %s: %w", path, err)
	}
	if err = Write(f, g); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}
