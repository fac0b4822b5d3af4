package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/mst"
	"github.com/katalvlaran/mstbench/verify"
)

// square returns 0—1—2—3—0 with weights 1,2,3,4.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 2))
	require.NoError(t, g.AddEdge(2, 3, 3))
	require.NoError(t, g.AddEdge(3, 0, 4))
	return g
}

// TestTree_Valid accepts the result of each algorithm.
func TestTree_Valid(t *testing.T) {
	g := square(t)
	for _, m := range mst.Methods() {
		algo, err := mst.Lookup(m)
		require.NoError(t, err)
		tree, err := algo(g)
		require.NoError(t, err)
		assert.NoError(t, verify.Tree(g, tree), m)
	}
	assert.NoError(t, verify.Tree(core.NewGraph(0), core.NewGraph(0)))
	assert.NoError(t, verify.Tree(core.NewGraph(1), core.NewGraph(1)))
}

// TestTree_Failures covers every structural failure class.
func TestTree_Failures(t *testing.T) {
	g := square(t)

	tests := []struct {
		name  string
		build func() *core.Graph
		want  error
	}{
		{"nil tree", func() *core.Graph { return nil }, verify.ErrNilTree},
		{"vertex count", func() *core.Graph { return core.NewGraph(3) }, verify.ErrVertexCount},
		{"too few edges", func() *core.Graph {
			tr := core.NewGraph(4)
			_ = tr.AddEdge(0, 1, 1)
			return tr
		}, verify.ErrEdgeCount},
		{"foreign weight", func() *core.Graph {
			tr := core.NewGraph(4)
			_ = tr.AddEdge(0, 1, 9)
			_ = tr.AddEdge(1, 2, 2)
			_ = tr.AddEdge(2, 3, 3)
			return tr
		}, verify.ErrForeignEdge},
		{"foreign pair", func() *core.Graph {
			tr := core.NewGraph(4)
			_ = tr.AddEdge(0, 2, 1)
			_ = tr.AddEdge(1, 2, 2)
			_ = tr.AddEdge(2, 3, 3)
			return tr
		}, verify.ErrForeignEdge},
		{"cycle", func() *core.Graph {
			tr := core.NewGraph(4)
			_ = tr.AddEdge(0, 1, 1)
			_ = tr.AddEdge(1, 0, 1)
			_ = tr.AddEdge(2, 3, 3)
			return tr
		}, verify.ErrNotSpanning},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, verify.Tree(g, tc.build()), tc.want)
		})
	}
}

// TestAgree reports the first disagreeing pair.
func TestAgree(t *testing.T) {
	assert.NoError(t, verify.Agree(nil))
	assert.NoError(t, verify.Agree([]verify.Result{{Method: "prim", Weight: 6}}))
	assert.NoError(t, verify.Agree([]verify.Result{
		{Method: "prim", Weight: 6}, {Method: "kruskal", Weight: 6}, {Method: "boruvka", Weight: 6},
	}))

	err := verify.Agree([]verify.Result{
		{Method: "prim", Weight: 6}, {Method: "kruskal", Weight: 6}, {Method: "boruvka", Weight: 7},
	})
	assert.ErrorIs(t, err, verify.ErrWeightMismatch)
	assert.Contains(t, err.Error(), "boruvka=7")
}

// TestAll combines structural and weight checks.
func TestAll(t *testing.T) {
	g := square(t)
	var results []verify.Result
	for _, m := range mst.Methods() {
		algo, err := mst.Lookup(m)
		require.NoError(t, err)
		tree, err := algo(g)
		require.NoError(t, err)
		results = append(results, verify.Result{Method: m, Tree: tree, Weight: tree.TotalWeight()})
	}
	assert.NoError(t, verify.All(g, results))

	results[1].Tree = core.NewGraph(4)
	err := verify.All(g, results)
	assert.ErrorIs(t, err, verify.ErrEdgeCount)
	assert.Contains(t, err.Error(), "kruskal")
}
