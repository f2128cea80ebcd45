// Package partition computes the row-block decomposition used by the
// distributed solvers.
package partition

import "errors"

// Sentinel errors for plan construction. All are configuration errors:
// report them and stop, never fall back to a degraded decomposition.
var (
	// ErrGridTooSmall indicates a grid side length below the 2×2 minimum.
	ErrGridTooSmall = errors.New("partition: grid side length must be at least 2")
	// ErrWorkerCount indicates a non-positive worker count.
	ErrWorkerCount = errors.New("partition: worker count must be at least 1")
	// ErrTooManyWorkers indicates more workers than grid rows; such a plan
	// would leave some workers without a single owned row.
	ErrTooManyWorkers = errors.New("partition: worker count must not exceed grid rows")
)
