// Package grid defines the dense field type and sentinel errors shared by
// every solver in poisson2d.
package grid

import "errors"

// Sentinel errors for grid construction and norm computation.
var (
	// ErrTooSmall indicates a requested side length below the 2x2 minimum.
	ErrTooSmall = errors.New("grid: side length must be at least 2")
	// ErrNotSquare indicates a source matrix whose row and column counts differ.
	ErrNotSquare = errors.New("grid: matrix must be square")
	// ErrNilMatrix indicates a nil source matrix.
	ErrNilMatrix = errors.New("grid: matrix must not be nil")
	// ErrDimensionMismatch indicates two grids of different side lengths.
	ErrDimensionMismatch = errors.New("grid: grids must share the same side length")
	// ErrNilFunc indicates a nil reference function.
	ErrNilFunc = errors.New("grid: reference function must not be nil")
)
