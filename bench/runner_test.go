package bench_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/bench"
	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/generator"
	"github.com/katalvlaran/mstbench/mst"
	"github.com/katalvlaran/mstbench/verify"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(0, 2, 5))
	return g
}

func TestNewRunner(t *testing.T) {
	r, err := bench.NewRunner(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, mst.Methods(), r.Methods())

	r, err = bench.NewRunner(zerolog.Nop(), mst.MethodKruskal)
	require.NoError(t, err)
	assert.Equal(t, []string{mst.MethodKruskal}, r.Methods())

	_, err = bench.NewRunner(zerolog.Nop(), "dijkstra")
	assert.ErrorIs(t, err, mst.ErrUnknownMethod)
}

func TestRunner_Compare(t *testing.T) {
	r, err := bench.NewRunner(zerolog.Nop())
	require.NoError(t, err)

	results, err := r.Compare(triangle(t))
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, res := range results {
		assert.Equal(t, uint64(2), res.Weight, res.Method)
		assert.Equal(t, 2, res.Tree.EdgeCount(), res.Method)
	}
}

func TestRunner_Compare_WeightMismatch(t *testing.T) {
	r, err := bench.NewRunner(zerolog.Nop(), mst.MethodPrim)
	require.NoError(t, err)

	// A spanning tree that is not minimal.
	r.Register("heavy", func(g *core.Graph) (*core.Graph, error) {
		tree := core.NewGraph(g.VertexCount())
		_ = tree.AddEdge(0, 1, 1)
		_ = tree.AddEdge(0, 2, 5)
		return tree, nil
	})

	results, err := r.Compare(triangle(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, verify.ErrWeightMismatch)
	assert.Len(t, results, 2)
}

func TestRunner_Compare_AlgorithmError(t *testing.T) {
	r, err := bench.NewRunner(zerolog.Nop(), mst.MethodKruskal)
	require.NoError(t, err)

	boom := errors.New("boom")
	r.Register("broken", func(*core.Graph) (*core.Graph, error) { return nil, boom })

	results, err := r.Compare(triangle(t))
	assert.ErrorIs(t, err, boom)
	assert.Len(t, results, 1)
}

func TestRunner_Run(t *testing.T) {
	r, err := bench.NewRunner(zerolog.Nop())
	require.NoError(t, err)

	suite := bench.Suite{Name: "small", Mode: generator.ModeSparse, MaxVertices: 40, Steps: 4, Seed: 7}
	report, err := r.Run(context.Background(), suite)
	require.NoError(t, err)

	assert.Equal(t, suite, report.Suite)
	assert.Equal(t, mst.Methods(), report.Methods)
	require.Len(t, report.Points, 4)

	zero := report.Points[0]
	assert.Equal(t, 0, zero.Vertices)
	assert.Zero(t, zero.Edges)
	assert.Len(t, zero.Timings, 3)

	for i, p := range report.Points[1:] {
		assert.Equal(t, (i+1)*10, p.Vertices)
		assert.GreaterOrEqual(t, p.Edges, p.Vertices-1)
		assert.NotZero(t, p.Weight)
		assert.Len(t, p.Timings, 3)
	}
}

func TestRunner_Run_Deterministic(t *testing.T) {
	r, err := bench.NewRunner(zerolog.Nop())
	require.NoError(t, err)

	suite := bench.Suite{Name: "dense", Mode: generator.ModeDense, MaxVertices: 30, Steps: 3, Seed: 3}
	first, err := r.Run(context.Background(), suite)
	require.NoError(t, err)
	second, err := r.Run(context.Background(), suite)
	require.NoError(t, err)

	require.Len(t, second.Points, len(first.Points))
	for i := range first.Points {
		assert.Equal(t, first.Points[i].Edges, second.Points[i].Edges)
		assert.Equal(t, first.Points[i].Weight, second.Points[i].Weight)
	}
}

func TestRunner_Run_StopsOnFailure(t *testing.T) {
	r, err := bench.NewRunner(zerolog.Nop(), mst.MethodKruskal)
	require.NoError(t, err)
	r.Register("broken", func(*core.Graph) (*core.Graph, error) {
		return nil, errors.New("boom")
	})

	suite := bench.Suite{Name: "s", Mode: generator.ModeSparse, MaxVertices: 20, Steps: 2}
	report, err := r.Run(context.Background(), suite)
	require.Error(t, err)
	require.NotNil(t, report)
	assert.Len(t, report.Points, 1)
}

func TestRunner_Run_Cancelled(t *testing.T) {
	r, err := bench.NewRunner(zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	suite := bench.Suite{Name: "s", Mode: generator.ModeSparse, MaxVertices: 20, Steps: 2}
	report, err := r.Run(ctx, suite)
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Empty(t, report.Points)
}

func TestRunner_Run_InvalidSuite(t *testing.T) {
	r, err := bench.NewRunner(zerolog.Nop())
	require.NoError(t, err)

	_, err = r.Run(context.Background(), bench.Suite{Name: "s", Mode: generator.ModeSparse})
	assert.ErrorIs(t, err, bench.ErrInvalidSuite)
}
