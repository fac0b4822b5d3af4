package mst_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/dsu"
	"github.com/katalvlaran/mstbench/mst"
)

// algorithms lists every implementation under test.
var algorithms = []struct {
	name string
	fn   mst.Algorithm
}{
	{mst.MethodPrim, mst.Prim},
	{mst.MethodKruskal, mst.Kruskal},
	{mst.MethodBoruvka, mst.Boruvka},
}

// wedge is a compact undirected edge literal for fixtures.
type wedge struct {
	u, v int
	w    uint64
}

// buildGraph creates an n-vertex graph from edges, failing the test on any
// insertion error.
func buildGraph(t testing.TB, n int, edges []wedge) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.u, e.v, e.w))
	}
	return g
}

// randomConnected builds a connected graph: a path 0—1—…—(n-1) plus extra
// random non-loop edges, with weights in [1, maxWeight]. Seeded for
// reproducibility.
func randomConnected(t testing.TB, n, extra int, maxWeight uint64, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	weight := func() uint64 { return 1 + uint64(r.Int63n(int64(maxWeight))) }

	g := core.NewGraph(n)
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i-1, i, weight()))
	}
	for i := 0; i < extra && n > 1; {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		require.NoError(t, g.AddEdge(u, v, weight()))
		i++
	}
	return g
}

// assertSpanningTree checks that tree spans every vertex of g with exactly
// V-1 acyclic edges, each present in g with the same weight.
func assertSpanningTree(t *testing.T, g, tree *core.Graph) {
	t.Helper()
	n := g.VertexCount()
	require.Equal(t, n, tree.VertexCount())
	if n == 0 {
		require.Zero(t, tree.EdgeCount())
		return
	}
	require.Equal(t, n-1, tree.EdgeCount())

	d := dsu.New(n)
	for _, e := range tree.Edges() {
		if e.From > e.To {
			continue
		}
		require.True(t, d.Unite(e.From, e.To), "cycle through edge %s", e)
		require.True(t, hasWeightedEdge(g, e), "edge %s not in input", e)
	}
	require.False(t, d.HasMultipleComponents())
}

// hasWeightedEdge reports whether g holds e's endpoints with e's weight.
func hasWeightedEdge(g *core.Graph, e core.Edge) bool {
	for _, in := range g.EdgesOf(e.From) {
		if in.To == e.To && in.Weight == e.Weight {
			return true
		}
	}
	return false
}

// oracleWeight computes the MST weight of g with gonum's Kruskal. Parallel
// edges collapse to the lightest one, which does not change the MST weight.
func oracleWeight(g *core.Graph) float64 {
	src := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.VertexCount(); v++ {
		src.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		if e.From >= e.To {
			continue
		}
		if old := src.WeightedEdge(int64(e.From), int64(e.To)); old != nil && old.Weight() <= float64(e.Weight) {
			continue
		}
		src.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.From),
			T: simple.Node(e.To),
			W: float64(e.Weight),
		})
	}

	dst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	return path.Kruskal(dst, src)
}
