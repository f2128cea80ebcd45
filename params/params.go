package params

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/poisson2d/problem"
)

// evalEnv builds the evaluation environment of one expression call. The
// function set mirrors what the boundary/forcing expressions of the
// benchmark problems need.
func evalEnv(x, y float64) map[string]interface{} {
	return map[string]interface{}{
		"x":    x,
		"y":    y,
		"pi":   math.Pi,
		"sin":  math.Sin,
		"cos":  math.Cos,
		"tan":  math.Tan,
		"exp":  math.Exp,
		"log":  math.Log,
		"sqrt": math.Sqrt,
		"abs":  math.Abs,
		"pow":  math.Pow,
	}
}

// Parse decodes YAML parameter data.
// Returns ErrBadYAML wrapping the decoder error on malformed input.
func Parse(data []byte) (Params, error) {
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrBadYAML, err)
	}

	return p, nil
}

// Load reads and parses a YAML parameter file.
func Load(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("params: read %s: %w", path, err)
	}

	return Parse(data)
}

// Marshal serializes p back to YAML, the wire form used to broadcast one
// parameter set to every rank.
func (p Params) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("params: marshal: %w", err)
	}

	return data, nil
}

// Compile turns the expression strings into a problem.Problem. Every
// expression is compiled once and probed at (0.5, 0.5), so a malformed or
// non-numeric expression surfaces here as a configuration error rather
// than mid-solve. Empty F and boundary expressions become the zero
// function; an empty Exact stays nil (analytic solution unknown).
func (p Params) Compile() (problem.Problem, error) {
	if err := p.Validate(); err != nil {
		return problem.Problem{}, err
	}

	var (
		out  problem.Problem
		err  error
		bind = []struct {
			src string
			dst *problem.Func2D
		}{
			{p.F, &out.F},
			{p.TopBC, &out.Top},
			{p.RightBC, &out.Right},
			{p.BottomBC, &out.Bottom},
			{p.LeftBC, &out.Left},
			{p.Exact, &out.Exact},
		}
	)
	for _, b := range bind {
		if *b.dst, err = compileFunc(b.src); err != nil {
			return problem.Problem{}, err
		}
	}

	return out.Normalized(), nil
}

// compileFunc compiles one expression into a Func2D, or nil for an empty
// expression.
func compileFunc(src string) (problem.Func2D, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}
	prog, err := expr.Compile(src, expr.Env(evalEnv(0, 0)), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadExpression, src, err)
	}
	// Probe once so runtime evaluation errors count as configuration errors.
	if _, err = vm.Run(prog, evalEnv(0.5, 0.5)); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrBadExpression, src, err)
	}

	return func(x, y float64) float64 {
		v, err := vm.Run(prog, evalEnv(x, y))
		if err != nil {
			// Unreachable for expressions that passed the probe; keep the
			// kernel total rather than panicking mid-sweep.
			return math.NaN()
		}

		return v.(float64)
	}, nil
}
