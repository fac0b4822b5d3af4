// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: append-only adjacency-list Graph over a fixed vertex set.
// Determinism:
//   - EdgesOf(v) and Edges() preserve insertion order.
//   - Edge IDs are assigned from a monotonic per-graph counter.

package core

import "fmt"

// Graph is an undirected, weighted multigraph over vertices 0..N-1.
//
// adjacency[v] holds v's outgoing edge copies in insertion order;
// neighbours[v] is the set of vertices adjacent to v, for O(1) HasEdge.
type Graph struct {
	adjacency  [][]Edge
	neighbours []map[VertexID]struct{}
	stored     uint64 // number of stored directed copies; also the next edge ID
}

// NewGraph returns an empty Graph over n vertices. A negative n is treated
// as zero.
// Complexity: O(n).
func NewGraph(n int) *Graph {
	if n < 0 {
		n = 0
	}
	return &Graph{
		adjacency:  make([][]Edge, n),
		neighbours: make([]map[VertexID]struct{}, n),
	}
}

// VertexCount returns the fixed number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of undirected edges, that is the number of
// stored directed copies divided by two.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return int(g.stored / 2) }

// AddEdge inserts the undirected edge {u, v} with weight w by appending
// Edge(u, v, w, id) to u's list and Edge(v, u, w, id+1) to v's list.
//
// Returns ErrVertexOutOfRange (wrapped with the offending endpoints) when u or
// v is outside [0, VertexCount()); the graph is left untouched in that case.
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(u, v VertexID, w uint64) error {
	n := len(g.adjacency)
	if u < 0 || u >= n || v < 0 || v >= n {
		return fmt.Errorf("AddEdge(%d, %d): vertex count %d: %w", u, v, n, ErrVertexOutOfRange)
	}

	id := g.stored
	g.adjacency[u] = append(g.adjacency[u], Edge{From: u, To: v, Weight: w, ID: id})
	g.adjacency[v] = append(g.adjacency[v], Edge{From: v, To: u, Weight: w, ID: id + 1})
	g.stored += 2

	g.link(u, v)
	g.link(v, u)

	return nil
}

// link records v as a neighbour of u.
func (g *Graph) link(u, v VertexID) {
	if g.neighbours[u] == nil {
		g.neighbours[u] = make(map[VertexID]struct{})
	}
	g.neighbours[u][v] = struct{}{}
}

// EdgesOf returns the edges whose From is v, in insertion order. The slice
// is a read-only view into graph storage and must not be modified. An
// out-of-range v yields nil.
// Complexity: O(1).
func (g *Graph) EdgesOf(v VertexID) []Edge {
	if v < 0 || v >= len(g.adjacency) {
		return nil
	}
	return g.adjacency[v]
}

// HasEdge reports whether at least one edge connects u and v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v VertexID) bool {
	if u < 0 || u >= len(g.neighbours) {
		return false
	}
	_, ok := g.neighbours[u][v]
	return ok
}

// Edges returns a copy of every stored directed edge, vertex-major and in
// insertion order within each vertex. Each undirected edge appears twice.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.stored)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}
	return out
}

// TotalWeight returns the sum of weights of the undirected edges. Each pair of
// copies is counted once by only summing copies with From <= To.
// Complexity: O(V + E).
func (g *Graph) TotalWeight() uint64 {
	var total uint64
	for _, list := range g.adjacency {
		for _, e := range list {
			if e.From < e.To || (e.From == e.To && e.ID%2 == 0) {
				total += e.Weight
			}
		}
	}
	return total
}
