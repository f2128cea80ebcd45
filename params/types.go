// Package params - expression-driven simulation parameters shared by
// every rank of a run.
package params

import "errors"

// Sentinel errors. All of them are configuration errors: report and stop.
var (
	// ErrBadYAML indicates unparseable parameter data.
	ErrBadYAML = errors.New("params: invalid YAML")
	// ErrBadExpression indicates an expression that does not compile or
	// does not evaluate to a number.
	ErrBadExpression = errors.New("params: invalid expression")
	// ErrBadTol indicates a non-positive tolerance.
	ErrBadTol = errors.New("params: tolerance must be positive")
	// ErrBadMaxIter indicates a negative iteration budget.
	ErrBadMaxIter = errors.New("params: max iterations must not be negative")
)

// Params is the YAML schema of one simulation: expression strings over
// the variables x, y plus the solver knobs. Empty expressions mean the
// zero function; an empty Exact means the analytic solution is unknown.
//
// Expressions may use x, y, the constant pi and the functions sin, cos,
// tan, exp, log, sqrt, abs and pow.
type Params struct {
	F        string  `yaml:"f"`
	Exact    string  `yaml:"exact"`
	TopBC    string  `yaml:"top_bc"`
	RightBC  string  `yaml:"right_bc"`
	BottomBC string  `yaml:"bottom_bc"`
	LeftBC   string  `yaml:"left_bc"`
	Tol      float64 `yaml:"tol"`
	MaxIter  int     `yaml:"max_iter"`
}

// Default returns the manufactured benchmark problem in expression form:
// f = 8π²·sin(2πx)·sin(2πy), zero Dirichlet boundaries, known exact
// solution, tol 1e-6, 1000 iterations.
func Default() Params {
	return Params{
		F:       "8 * pi * pi * sin(2 * pi * x) * sin(2 * pi * y)",
		Exact:   "sin(2 * pi * x) * sin(2 * pi * y)",
		Tol:     1e-6,
		MaxIter: 1000,
	}
}

// Validate checks the numeric knobs; expressions are validated by Compile.
func (p Params) Validate() error {
	if p.Tol <= 0 {
		return ErrBadTol
	}
	if p.MaxIter < 0 {
		return ErrBadMaxIter
	}

	return nil
}
