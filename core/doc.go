// SPDX-License-Identifier: MIT

// Package core provides the graph primitives shared by every MST algorithm in
// this module: the immutable Edge descriptor and the append-only Graph.
//
// A Graph G = (V, E) is created over a fixed number of vertices 0..N-1 and is
// populated with undirected, weighted edges. Each undirected edge {u, v, w} is
// stored twice, once in the adjacency list of u (u→v) and once in the list of
// v (v→u). The two copies share the weight and receive consecutive, distinct
// IDs taken from a per-graph insertion counter:
//
//	g := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, 7) // stores 0→1 (ID 0) and 1→0 (ID 1)
//	_ = g.AddEdge(1, 2, 4) // stores 1→2 (ID 2) and 2→1 (ID 3)
//
// Edge IDs carry no meaning beyond insertion order; algorithms use them to
// break weight ties deterministically (lower ID wins).
//
// Invariants:
//
//   - VertexCount() never changes after NewGraph.
//   - EdgeCount() is the number of undirected edges, i.e. stored copies / 2.
//   - EdgesOf(v) returns v's outgoing copies in insertion order.
//   - HasEdge(u, v) answers in O(1) through a per-vertex neighbour set, so
//     algorithms never scan adjacency lists to detect duplicates.
//
// Concurrency:
//
//	Graph is not synchronised. Build it from one goroutine; once built, any
//	number of goroutines may read it concurrently. MST algorithms only read
//	their input and return a freshly allocated output Graph.
//
// Errors:
//
//	ErrVertexOutOfRange - an endpoint passed to AddEdge is outside [0, N).
package core
