// Package partition splits the rows of a square grid into contiguous
// blocks, one per distributed worker, with the ghost-row bookkeeping the
// halo exchange relies on.
//
// What:
//
//   - NewPlan(n, workers) assigns each worker ⌊n/P⌋ rows, plus one of the
//     n mod P remainder rows to each of the first workers.
//   - Blocks at an internal boundary carry one read-only ghost row per
//     neighbor; the first and last block ghost only on their
//     interior-facing side (the domain boundary row is fixed Dirichlet
//     data, not a ghost).
//   - Accessors expose both views of a block: global (Start, OwnedStart)
//     for scatter/gather offsets and coordinate lookups, local
//     (Rows, OwnedRange) for sweep bounds.
//
// Why:
//
//   - The same plan drives scattering the initial grid, the per-sweep halo
//     exchange, the forcing-function row offset, and the ghost-free gather,
//     so the invariants live in exactly one place: Σ Owned(r) = n, blocks
//     tile [0, n) contiguously, and a ghost row always duplicates the
//     adjacent owned row of a neighbor.
//
// A Plan is a pure function of (n, workers): workers may compute it
// independently instead of receiving it from a coordinator and still agree
// bit-for-bit.
//
// Complexity: NewPlan O(P) time/memory; all accessors O(1).
//
// Errors:
//
//   - ErrGridTooSmall: n < 2.
//   - ErrWorkerCount: workers < 1.
//   - ErrTooManyWorkers: workers > n (some worker would own no row).
package partition
