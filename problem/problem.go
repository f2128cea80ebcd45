// Package problem - forcing, boundary and exact-solution data for the
// Poisson solvers. Everything here is plain data plus pure functions;
// solvers never mutate a Problem.
package problem

import "math"

// Func2D is a pure scalar function over normalized coordinates in [0,1]².
// Implementations must be stateless and side-effect free: solvers evaluate
// them from multiple goroutines and multiple ranks concurrently.
type Func2D func(x, y float64) float64

// Problem bundles the data of one Dirichlet problem for
// −Δu = f on (0,1)², u = g on the boundary.
//
// Boundary naming follows the grid layout: Top is row 0, Bottom is row n−1,
// Left is column 0, Right is column n−1. Each boundary function is evaluated
// at the true cell coordinates of its edge, so a single function may be
// shared by all four sides.
//
// Exact is optional; a nil Exact means the analytic solution is unknown and
// no L2 error can be reported.
type Problem struct {
	// F is the forcing term f(x, y).
	F Func2D
	// Top, Right, Bottom, Left are the Dirichlet boundary values.
	Top, Right, Bottom, Left Func2D
	// Exact is the analytic solution, when known. May be nil.
	Exact Func2D
}

// ZeroFunc is the identically-zero Func2D. Nil function fields are
// normalized to ZeroFunc so solver kernels never branch on nil.
func ZeroFunc(_, _ float64) float64 { return 0 }

// Zero returns the homogeneous problem: zero forcing, zero boundaries,
// exact solution identically zero. Useful as a fixed point for sweep tests.
func Zero() Problem {
	return Problem{
		F:      ZeroFunc,
		Top:    ZeroFunc,
		Right:  ZeroFunc,
		Bottom: ZeroFunc,
		Left:   ZeroFunc,
		Exact:  ZeroFunc,
	}
}

// Manufactured returns the standard manufactured Poisson problem
//
//	f(x,y) = 8π²·sin(2πx)·sin(2πy),  u|∂Ω = 0,
//
// whose exact solution is u(x,y) = sin(2πx)·sin(2πy). Doubling the grid
// resolution must shrink the discrete L2 error by roughly 4× (second-order
// stencil), which makes this problem the canonical accuracy check.
func Manufactured() Problem {
	f := func(x, y float64) float64 {
		return 8 * math.Pi * math.Pi * math.Sin(2*math.Pi*x) * math.Sin(2*math.Pi*y)
	}
	exact := func(x, y float64) float64 {
		return math.Sin(2*math.Pi*x) * math.Sin(2*math.Pi*y)
	}

	return Problem{
		F:      f,
		Top:    ZeroFunc,
		Right:  ZeroFunc,
		Bottom: ZeroFunc,
		Left:   ZeroFunc,
		Exact:  exact,
	}
}

// Normalized returns a copy of p with every nil function field replaced by
// ZeroFunc (Exact stays nil: "unknown" is meaningful there).
// Solvers call this once up front; kernels then evaluate fields directly.
func (p Problem) Normalized() Problem {
	if p.F == nil {
		p.F = ZeroFunc
	}
	if p.Top == nil {
		p.Top = ZeroFunc
	}
	if p.Right == nil {
		p.Right = ZeroFunc
	}
	if p.Bottom == nil {
		p.Bottom = ZeroFunc
	}
	if p.Left == nil {
		p.Left = ZeroFunc
	}

	return p
}

// HasExact reports whether the analytic solution is known.
func (p Problem) HasExact() bool { return p.Exact != nil }
