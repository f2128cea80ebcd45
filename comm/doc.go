// Package comm is the in-process message-passing fabric the distributed
// Poisson solvers coordinate on: goroutines play the role of worker
// processes, buffered per-pair FIFO queues the role of the interconnect.
//
// What:
//
//   - Run spawns one goroutine per rank, hands each a Comm endpoint and
//     joins them all; the first error wins and no goroutine leaks.
//   - Point-to-point: SendRow / RecvRow move single grid rows between
//     logically adjacent ranks (the halo exchange).
//   - Collectives: Barrier, AllreduceMax (ring reduction), BroadcastString,
//     ScatterRows and GatherOwned — the full set the Jacobi and Schwarz
//     loops need, and nothing more.
//
// Why:
//
//   - The solvers are specified against blocking message-passing semantics
//     (scatter → sweep ⇄ halo → reduce → gather). Modeling ranks as
//     goroutines keeps those semantics intact while making every run a
//     plain function call that unit tests can drive.
//   - Each directed rank pair gets its own buffered queue, so the
//     symmetric send-then-receive halo ordering cannot form a circular
//     wait, and message order per pair is FIFO by construction.
//
// Discipline:
//
//   - Every rank must call the same collectives in the same order.
//   - There is no cancellation or timeout: the only clean way out of the
//     iteration loop is the convergence reduction itself. A rank that must
//     abort contributes +Inf to AllreduceMax so its peers observe the
//     abort at the next reduction instead of blocking forever.
//
// Errors: configuration sentinels (ErrWorkerCount, ErrQueueCap,
// ErrPeerOutOfRange, ErrRootOutOfRange, ErrPlanMismatch, ErrNilGlobal) are
// fatal; ErrUnexpectedMessage reports a protocol bug — a collective
// receiving a payload of the wrong kind or shape.
package comm
