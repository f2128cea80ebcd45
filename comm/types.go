// Package comm implements the in-process message-passing fabric the
// distributed solvers run on.
package comm

import "errors"

// Sentinel errors. Configuration errors (worker counts, peer ranks, roots,
// plan mismatches) are fatal and reported immediately; ErrUnexpectedMessage
// signals a protocol bug, not a recoverable condition.
var (
	// ErrWorkerCount indicates a non-positive worker count for Run.
	ErrWorkerCount = errors.New("comm: worker count must be at least 1")
	// ErrNilBody indicates a nil rank body passed to Run.
	ErrNilBody = errors.New("comm: body must not be nil")
	// ErrQueueCap indicates a non-positive point-to-point queue capacity.
	ErrQueueCap = errors.New("comm: queue capacity must be at least 1")
	// ErrPeerOutOfRange indicates a peer rank outside [0, size).
	ErrPeerOutOfRange = errors.New("comm: peer rank out of range")
	// ErrSelfMessage indicates a send or receive addressed to the calling rank.
	ErrSelfMessage = errors.New("comm: peer must differ from the calling rank")
	// ErrRootOutOfRange indicates a collective root outside [0, size).
	ErrRootOutOfRange = errors.New("comm: root rank out of range")
	// ErrNilGlobal indicates a scatter root without a global matrix to scatter.
	ErrNilGlobal = errors.New("comm: scatter root must provide the global matrix")
	// ErrPlanMismatch indicates a partition plan built for a different
	// worker count than the fabric runs.
	ErrPlanMismatch = errors.New("comm: partition plan does not match fabric size")
	// ErrUnexpectedMessage indicates a received message of the wrong kind or
	// shape for the collective in progress.
	ErrUnexpectedMessage = errors.New("comm: unexpected message")
)

// Options configures the fabric.
//   - QueueCap: buffered capacity of each directed point-to-point queue.
//     Must be ≥ 1 so the symmetric send-then-receive halo ordering cannot
//     form a circular wait.
type Options struct {
	QueueCap int
}

// DefaultOptions returns the fabric defaults: QueueCap 4.
func DefaultOptions() Options {
	return Options{QueueCap: 4}
}

// kind tags the payload of a point-to-point message so a receiver can
// detect protocol mismatches instead of silently misreading data.
type kind uint8

const (
	kindRow    kind = iota // one grid row, halo exchange
	kindScalar             // one float64, ring reductions
	kindString             // UTF-8 payload, broadcasts
	kindBlock              // flattened row block, scatter/gather
)

// message is the unit of transfer between two ranks.
type message struct {
	kind kind
	vals []float64
	str  string
}
