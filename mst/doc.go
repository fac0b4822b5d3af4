// SPDX-License-Identifier: MIT

// Package mst provides three independent algorithms that compute a Minimum
// Spanning Tree (MST) of an undirected, weighted *core.Graph: Prim, Kruskal
// and Borůvka. All three share the uniform signature
//
//	func(g *core.Graph) (*core.Graph, error)
//
// and return a new Graph over the same vertex set containing exactly the
// tree edges. The input is only read.
//
// What & Why
//
//   - An MST of a connected graph G = (V, E) is an acyclic subset T ⊆ E that
//     touches every vertex and has minimum total weight. It always holds
//     |V|−1 edges.
//
//   - All three algorithms rely on the cut property: the cheapest edge
//     crossing any cut belongs to some MST. Running them side by side and
//     comparing total weights is a strong cross-check of each implementation.
//
// Algorithms Provided
//
//   - Prim(g) / PrimFrom(g, root)
//     Grows one tree from a root. An indexed min-heap keyed by
//     (weight, vertex) holds every vertex adjacent to the tree with its
//     cheapest connecting edge; decrease-key updates it in place.
//     Time O(E log V), space O(V).
//
//   - Kruskal(g)
//     Sorts every edge by (weight, ID) and keeps the ones that join two
//     different union-find sets. Time O(E log E), space O(V + E).
//
//   - Boruvka(g)
//     In each round every component selects its cheapest outgoing edge
//     (ties: lower edge ID), then all selections are committed at once.
//     Components at least halve per round. Time O(E log V), space O(V).
//
// Determinism
//
//	Edge IDs are insertion sequence numbers, so ties resolve identically on
//	every run. The selected edges may differ between algorithms when weights
//	tie, but the total weight never does.
//
// Error Conditions
//
//   - ErrNilGraph      : any algorithm given a nil graph.
//   - ErrRootOutOfRange: PrimFrom with a root outside [0, V).
//   - ErrDisconnected  : Boruvka on a graph with several components.
//   - ErrUnknownMethod : Lookup/Compute with an unregistered method name.
//
// Prim and Kruskal do not detect disconnection: they return a partial tree
// or a spanning forest with fewer than V−1 edges. Use package verify to check
// a result against its input.
//
// For examples of usage, see example_test.go in this package.
package mst
