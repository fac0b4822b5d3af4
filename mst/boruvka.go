// SPDX-License-Identifier: MIT

package mst

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/dsu"
)

// Boruvka computes an MST of g by contracting components in rounds.
//
// Error Conditions:
//   - ErrNilGraph     : g is nil.
//   - ErrDisconnected : a round finds no edge leaving any component while the
//     DSU still reports several components.
//
// Each round:
//  1. Stop if the DSU holds a single component.
//  2. For every directed copy (from→to) whose endpoints lie in different
//     components, offer it as the cheapest outgoing edge of find(from)'s
//     component. Lower weight wins; on equal weight the lower edge ID wins.
//  3. Commit every selected edge, skipping the opposite copy when both
//     components picked the same undirected edge, and unite its endpoints.
//
// The (weight, ID) order is total and the two copies of one undirected edge
// take consecutive IDs, so components agree on ties and no cycle can form.
//
// Complexity: O(E) per round, O(log V) rounds, O(E log V) overall.
func Boruvka(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.VertexCount()
	tree := core.NewGraph(n)
	d := dsu.New(n)
	cheapest := make([]core.Edge, n) // indexed by component representative

	for round := 1; d.HasMultipleComponents(); round++ {
		for i := range cheapest {
			cheapest[i] = core.NoEdge
		}

		for v := 0; v < n; v++ {
			for _, e := range g.EdgesOf(v) {
				a, b := d.Find(e.From), d.Find(e.To)
				if a == b {
					continue
				}
				if e.Less(cheapest[a]) {
					cheapest[a] = e
				}
			}
		}

		merged := 0
		for _, e := range cheapest {
			if e.IsNone() || tree.HasEdge(e.From, e.To) {
				continue
			}
			if d.Unite(e.From, e.To) {
				_ = tree.AddEdge(e.From, e.To, e.Weight)
				merged++
			}
		}

		if merged == 0 {
			return nil, fmt.Errorf("Boruvka: round %d: %d components left: %w",
				round, d.Components(), ErrDisconnected)
		}
	}

	return tree, nil
}
