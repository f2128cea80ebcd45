// Package params loads simulation parameters from YAML and compiles their
// expression strings into the pure functions the solvers consume.
//
// A parameter file names the forcing term, the four Dirichlet boundaries
// and (optionally) the exact solution as expressions over x and y:
//
//	f:        8 * pi * pi * sin(2 * pi * x) * sin(2 * pi * y)
//	exact:    sin(2 * pi * x) * sin(2 * pi * y)
//	tol:      1.0e-6
//	max_iter: 1000
//
// Compile turns each expression into a problem.Func2D (compiled once,
// evaluated per cell); empty expressions become the zero function, an
// empty exact stays unknown. Malformed or non-numeric expressions are
// configuration errors caught at compile time, not mid-solve.
//
// Broadcast ships one parameter set to every rank of a comm fabric in its
// YAML wire form, so all ranks compile from identical bytes.
//
// Errors: ErrBadYAML, ErrBadExpression, ErrBadTol, ErrBadMaxIter — all
// configuration errors, reported before any solver runs.
package params
