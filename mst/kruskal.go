// SPDX-License-Identifier: MIT

package mst

import (
	"sort"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/dsu"
)

// Kruskal computes an MST of g by scanning edges in ascending weight order and
// keeping each edge that joins two different components.
//
// Steps:
//  1. Collect every stored directed copy (each undirected edge twice; the
//     second copy is always rejected because its endpoints are joined).
//  2. Sort by (Weight, ID) so that ties resolve deterministically.
//  3. For each edge whose endpoints lie in different DSU sets, unite them and
//     commit the edge. Stop once V-1 edges are committed.
//
// On a disconnected graph the result is a minimum spanning forest with fewer
// than V-1 edges; no error is reported.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	tree := core.NewGraph(n)

	edges := g.Edges()
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })

	d := dsu.New(n)
	for _, e := range edges {
		if tree.EdgeCount() == n-1 {
			break
		}
		if d.Unite(e.From, e.To) {
			_ = tree.AddEdge(e.From, e.To, e.Weight)
		}
	}

	return tree, nil
}
