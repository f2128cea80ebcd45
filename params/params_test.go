package params_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poisson2d/comm"
	"github.com/katalvlaran/poisson2d/params"
	"github.com/katalvlaran/poisson2d/problem"
)

const yamlManufactured = `
f: 8 * pi * pi * sin(2 * pi * x) * sin(2 * pi * y)
exact: sin(2 * pi * x) * sin(2 * pi * y)
tol: 1.0e-7
max_iter: 500
`

func TestParse(t *testing.T) {
	p, err := params.Parse([]byte(yamlManufactured))
	require.NoError(t, err)

	assert.Equal(t, 1e-7, p.Tol)
	assert.Equal(t, 500, p.MaxIter)
	assert.Empty(t, p.TopBC, "unset boundaries default to the zero function")
}

func TestParse_BadYAML(t *testing.T) {
	_, err := params.Parse([]byte("tol: [not a number"))
	assert.ErrorIs(t, err, params.ErrBadYAML)
}

// Compiled expressions must match the hand-written manufactured problem
// pointwise.
func TestCompile_MatchesManufactured(t *testing.T) {
	p, err := params.Parse([]byte(yamlManufactured))
	require.NoError(t, err)

	got, err := p.Compile()
	require.NoError(t, err)
	require.True(t, got.HasExact())

	want := problem.Manufactured()
	for _, q := range [][2]float64{{0, 0}, {0.25, 0.5}, {0.1, 0.9}, {1, 1}} {
		assert.InDelta(t, want.F(q[0], q[1]), got.F(q[0], q[1]), 1e-12, "f at (%g,%g)", q[0], q[1])
		assert.InDelta(t, want.Exact(q[0], q[1]), got.Exact(q[0], q[1]), 1e-12, "exact at (%g,%g)", q[0], q[1])
		assert.Zero(t, got.Top(q[0], q[1]), "empty boundary expression must be zero")
	}
}

func TestCompile_DefaultEqualsManufactured(t *testing.T) {
	got, err := params.Default().Compile()
	require.NoError(t, err)

	want := problem.Manufactured()
	for _, q := range [][2]float64{{0.3, 0.7}, {0.5, 0.5}} {
		assert.InDelta(t, want.F(q[0], q[1]), got.F(q[0], q[1]), 1e-12)
		assert.InDelta(t, want.Exact(q[0], q[1]), got.Exact(q[0], q[1]), 1e-12)
	}
}

func TestCompile_Errors(t *testing.T) {
	p := params.Default()
	p.F = "sin(2 * pi * x" // unbalanced parenthesis
	_, err := p.Compile()
	assert.ErrorIs(t, err, params.ErrBadExpression)

	p = params.Default()
	p.F = "nosuchfn(x)"
	_, err = p.Compile()
	assert.ErrorIs(t, err, params.ErrBadExpression)

	p = params.Default()
	p.Tol = 0
	_, err = p.Compile()
	assert.ErrorIs(t, err, params.ErrBadTol)

	p = params.Default()
	p.MaxIter = -1
	_, err = p.Compile()
	assert.ErrorIs(t, err, params.ErrBadMaxIter)
}

// Marshal → Parse must round-trip exactly.
func TestMarshal_RoundTrip(t *testing.T) {
	want := params.Default()
	data, err := want.Marshal()
	require.NoError(t, err)

	got, err := params.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// Broadcast must hand every rank the root's parameters, byte-identical
// through the YAML wire form.
func TestBroadcast(t *testing.T) {
	rootParams := params.Default()
	rootParams.Tol = 1e-9

	err := comm.Run(3, func(c *comm.Comm) error {
		local := params.Params{} // non-roots start empty
		if c.Rank() == 0 {
			local = rootParams
		}
		got, err := params.Broadcast(c, 0, local)
		if err != nil {
			return err
		}
		assert.Equal(t, rootParams, got, "rank %d", c.Rank())

		// Every rank can compile the shared parameters independently.
		prob, err := got.Compile()
		if err != nil {
			return err
		}
		assert.InDelta(t, 8*math.Pi*math.Pi, prob.F(0.25, 0.25), 1e-9)

		return nil
	})
	require.NoError(t, err)
}
