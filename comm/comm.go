package comm

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Comm is one rank's endpoint into the fabric. A Comm is only valid inside
// the body it was handed to and must not be shared across ranks; all of its
// methods may block until the matching peer or collective call arrives.
type Comm struct {
	rank int
	fab  *fabric
}

// fabric holds the shared state of one Run: a directed FIFO queue per
// ordered rank pair and a reusable generation barrier.
type fabric struct {
	size   int
	queues [][]chan message // queues[from][to]
	bar    *barrier
}

func newFabric(size, queueCap int) *fabric {
	queues := make([][]chan message, size)
	for from := range queues {
		queues[from] = make([]chan message, size)
		for to := range queues[from] {
			if to != from {
				queues[from][to] = make(chan message, queueCap)
			}
		}
	}

	return &fabric{size: size, queues: queues, bar: newBarrier(size)}
}

// Run spawns one goroutine per rank, each handed its own Comm, and waits
// for all of them to finish. The first non-nil error wins; every rank is
// joined before Run returns, so no goroutine outlives the call.
//
// Ranks coordinate only through the Comm: collectives must be called by
// every rank in the same order, point-to-point calls must pair up. A rank
// that returns early from inside a collective its peers are still blocked
// on will deadlock them — cooperative shutdown goes through the same
// reduction the convergence loop uses (see jacobi.Coordinator).
func Run(workers int, body func(*Comm) error) error {
	return RunWith(DefaultOptions(), workers, body)
}

// RunWith is Run with explicit fabric options.
// Returns ErrWorkerCount, ErrNilBody or ErrQueueCap on invalid
// configuration, otherwise the first error returned by a rank body.
func RunWith(opts Options, workers int, body func(*Comm) error) error {
	// 1) validate configuration
	if workers < 1 {
		return fmt.Errorf("%w: got %d", ErrWorkerCount, workers)
	}
	if body == nil {
		return ErrNilBody
	}
	if opts.QueueCap < 1 {
		return fmt.Errorf("%w: got %d", ErrQueueCap, opts.QueueCap)
	}

	// 2) spawn the rank team and join it
	var (
		fab = newFabric(workers, opts.QueueCap)
		g   errgroup.Group
	)
	for r := 0; r < workers; r++ {
		c := &Comm{rank: r, fab: fab}
		g.Go(func() error { return body(c) })
	}

	return g.Wait()
}

// Rank reports this endpoint's rank in [0, Size()).
func (c *Comm) Rank() int { return c.rank }

// Size reports the number of ranks in the fabric.
func (c *Comm) Size() int { return c.fab.size }

// send enqueues m for the given peer. Blocks only when the peer's queue is
// full, which the bounded per-iteration message counts of the solver
// protocols never reach.
func (c *Comm) send(to int, m message) error {
	if to < 0 || to >= c.fab.size {
		return fmt.Errorf("%w: rank %d of %d", ErrPeerOutOfRange, to, c.fab.size)
	}
	if to == c.rank {
		return ErrSelfMessage
	}
	c.fab.queues[c.rank][to] <- m

	return nil
}

// recv blocks until the next message from the given peer arrives and
// checks it carries the expected kind.
func (c *Comm) recv(from int, want kind) (message, error) {
	if from < 0 || from >= c.fab.size {
		return message{}, fmt.Errorf("%w: rank %d of %d", ErrPeerOutOfRange, from, c.fab.size)
	}
	if from == c.rank {
		return message{}, ErrSelfMessage
	}
	m := <-c.fab.queues[from][c.rank]
	if m.kind != want {
		return message{}, fmt.Errorf("%w: kind %d from rank %d, want %d", ErrUnexpectedMessage, m.kind, from, want)
	}

	return m, nil
}

// SendRow sends one grid row to the given peer. The row is copied before
// it is enqueued, so the caller may keep mutating its buffer.
func (c *Comm) SendRow(to int, row []float64) error {
	cp := make([]float64, len(row))
	copy(cp, row)

	return c.send(to, message{kind: kindRow, vals: cp})
}

// RecvRow blocks until the next row from the given peer arrives.
// Returns ErrUnexpectedMessage if the pending message is not a row.
func (c *Comm) RecvRow(from int) ([]float64, error) {
	m, err := c.recv(from, kindRow)
	if err != nil {
		return nil, err
	}

	return m.vals, nil
}

// Barrier blocks until every rank of the fabric has reached it. The
// barrier is generational: it can be reused every iteration without
// reinitialization.
func (c *Comm) Barrier() {
	c.fab.bar.await()
}

// barrier is a classic generation-counting barrier: the last arriving
// rank flips the generation and wakes everyone parked on the old one.
type barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	size    int
	waiting int
	gen     uint64
}

func newBarrier(size int) *barrier {
	b := &barrier{size: size}
	b.cond = sync.NewCond(&b.mu)

	return b
}

func (b *barrier) await() {
	b.mu.Lock()
	gen := b.gen
	b.waiting++
	if b.waiting == b.size {
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()
	} else {
		for gen == b.gen {
			b.cond.Wait()
		}
	}
	b.mu.Unlock()
}
