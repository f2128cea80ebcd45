package partition

import "fmt"

// Plan is the row-block decomposition of an n×n grid across P workers.
//
// Worker r owns a contiguous run of Owned(r) rows; the runs tile [0, n)
// without gaps or overlaps. On top of its owned rows each block carries
// read-only ghost rows that duplicate the adjacent owned row of each
// neighbor: one leading ghost when a previous block exists, one trailing
// ghost when a next block exists. Blocks at the true domain boundary have
// no ghost on that side — their extreme owned row is the fixed Dirichlet
// row itself.
//
// A Plan is immutable after construction and depends only on (n, P), so
// every worker may compute it independently and arrive at the same result.
type Plan struct {
	n       int
	workers int
	owned   []int // owned row count per worker
	oStart  []int // global index of the first owned row
}

// NewPlan builds the decomposition of n grid rows across the given number
// of workers. Remainder rows (n mod workers) go to the first workers, one
// each, so block sizes differ by at most one.
//
// Returns ErrGridTooSmall when n < 2, ErrWorkerCount when workers < 1 and
// ErrTooManyWorkers when workers > n.
// Complexity: O(P) time and memory.
func NewPlan(n, workers int) (*Plan, error) {
	// 1) validate the configuration
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrGridTooSmall, n)
	}
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrWorkerCount, workers)
	}
	if workers > n {
		return nil, fmt.Errorf("%w: %d workers for %d rows", ErrTooManyWorkers, workers, n)
	}

	// 2) split n rows into workers blocks, remainder to the first blocks
	var (
		base      = n / workers
		remainder = n % workers
		p         = &Plan{
			n:       n,
			workers: workers,
			owned:   make([]int, workers),
			oStart:  make([]int, workers),
		}
		next int // global row of the next unassigned row
	)
	for r := 0; r < workers; r++ {
		p.owned[r] = base
		if r < remainder {
			p.owned[r]++
		}
		p.oStart[r] = next
		next += p.owned[r]
	}

	return p, nil
}

// N reports the grid side length the plan was built for.
func (p *Plan) N() int { return p.n }

// Workers reports the number of blocks in the plan.
func (p *Plan) Workers() int { return p.workers }

// Owned reports how many rows worker r truly owns (ghosts excluded).
func (p *Plan) Owned(r int) int { return p.owned[r] }

// OwnedStart reports the global index of worker r's first owned row.
func (p *Plan) OwnedStart(r int) int { return p.oStart[r] }

// HasPrev reports whether worker r has a neighbor block above it.
func (p *Plan) HasPrev(r int) bool { return r > 0 }

// HasNext reports whether worker r has a neighbor block below it.
func (p *Plan) HasNext(r int) bool { return r < p.workers-1 }

// Rows reports the local row count of worker r's block: owned rows plus
// one ghost per existing neighbor.
func (p *Plan) Rows(r int) int {
	rows := p.owned[r]
	if p.HasPrev(r) {
		rows++
	}
	if p.HasNext(r) {
		rows++
	}

	return rows
}

// Start reports the global row index of worker r's first local row, the
// leading ghost when one exists. Local row i of block r therefore maps to
// global row Start(r)+i, the index solver kernels must evaluate
// coordinate-dependent functions at.
func (p *Plan) Start(r int) int {
	if p.HasPrev(r) {
		return p.oStart[r] - 1
	}

	return p.oStart[r]
}

// OwnedRange reports the half-open range [lo, hi) of local row indices
// that worker r truly owns inside its block.
func (p *Plan) OwnedRange(r int) (lo, hi int) {
	if p.HasPrev(r) {
		lo = 1
	}

	return lo, lo + p.owned[r]
}
