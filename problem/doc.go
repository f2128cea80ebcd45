// Package problem defines the mathematical data of a 2D Poisson problem on
// the unit square: the forcing term, the four Dirichlet boundary segments,
// and (when known) the exact solution.
//
// All functions are pure Func2D callables over normalized coordinates
// (x, y) ∈ [0,1]², so they can be evaluated on any worker without
// communication or shared state.
//
// Two ready-made problems ship with the package:
//
//   - Zero()         — homogeneous Laplace data; the solution is identically 0.
//   - Manufactured() — f(x,y) = 8π²·sin(2πx)·sin(2πy) with zero Dirichlet
//     boundaries and the known exact solution u(x,y) = sin(2πx)·sin(2πy),
//     the standard convergence-order testbed.
package problem
