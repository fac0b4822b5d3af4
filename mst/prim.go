// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// Prim computes an MST of g by growing a single tree from vertex 0.
// It is PrimFrom(g, 0).
func Prim(g *core.Graph) (*core.Graph, error) {
	return PrimFrom(g, 0)
}

// PrimFrom computes an MST of g by growing a single tree from root.
//
// Error Conditions:
//   - ErrNilGraph       : g is nil.
//   - ErrRootOutOfRange : root is not in [0, V) while V > 0.
//
// Steps:
//  1. best[v] = NoEdge for every v; the frontier holds (0, root).
//  2. Extract the minimum (weight, vertex) entry v and mark v as in the tree.
//     If best[v] is a real edge and the tree holds no edge arriving at v,
//     commit best[v].
//  3. Relax: for every edge (v→to, w) with to outside the tree and w cheaper
//     than best[to], set best[to] and decrease to's frontier key.
//  4. Stop when the frontier is empty.
//
// Ties resolve by the frontier order: equal weights extract the lower vertex
// ID first. Vertices unreachable from root are never committed, so on a
// disconnected graph the result holds fewer than V-1 edges and no error is
// reported; callers must guarantee connectivity or verify the result.
//
// Complexity: O(E log V) time, O(V) extra memory.
func PrimFrom(g *core.Graph, root core.VertexID) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	tree := core.NewGraph(n)
	if n == 0 {
		return tree, nil
	}
	if root < 0 || root >= n {
		return nil, fmt.Errorf("PrimFrom(%d): vertex count %d: %w", root, n, ErrRootOutOfRange)
	}

	best := make([]core.Edge, n) // cheapest known edge into each vertex
	for v := range best {
		best[v] = core.NoEdge
	}
	inTree := make([]bool, n)

	pq := newFrontier(n)
	pq.set(root, 0)

	for pq.Len() > 0 {
		v := pq.popMin()
		inTree[v] = true

		if in := best[v]; !in.IsNone() && !tree.HasEdge(in.From, v) {
			// both endpoints are vertices of g, so AddEdge cannot fail
			_ = tree.AddEdge(in.From, in.To, in.Weight)
		}

		for _, e := range g.EdgesOf(v) {
			to := e.To
			if inTree[to] {
				continue
			}
			if cur := best[to]; cur.IsNone() || e.Weight < cur.Weight {
				best[to] = e
				pq.set(to, e.Weight)
			}
		}
	}

	return tree, nil
}
