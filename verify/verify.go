// SPDX-License-Identifier: MIT

// Package verify checks MST results structurally and against each other.
//
// The MST algorithms do not self-validate. Callers that need a guarantee run
// Tree on every result and Agree across results:
//
//	tree, _ := mst.Kruskal(g)
//	if err := verify.Tree(g, tree); err != nil { ... }
//
// Errors are sentinels wrapped with context; branch with errors.Is.
package verify

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/dsu"
)

var (
	// ErrNilTree indicates a missing input or result graph.
	ErrNilTree = errors.New("verify: nil graph")

	// ErrVertexCount indicates the tree's vertex count differs from the input's.
	ErrVertexCount = errors.New("verify: wrong vertices count")

	// ErrEdgeCount indicates the tree does not hold exactly V-1 edges.
	ErrEdgeCount = errors.New("verify: wrong edges count")

	// ErrNotSpanning indicates the tree contains a cycle or leaves a vertex
	// unconnected.
	ErrNotSpanning = errors.New("verify: not a spanning tree")

	// ErrForeignEdge indicates a tree edge that does not exist in the input.
	ErrForeignEdge = errors.New("verify: edge not in input graph")

	// ErrWeightMismatch indicates two results disagree on the total weight.
	ErrWeightMismatch = errors.New("verify: wrong tree weight")
)

// Result is one algorithm's output on a shared input.
type Result struct {
	Method  string        `json:"method" yaml:"method"`
	Tree    *core.Graph   `json:"-" yaml:"-"`
	Weight  uint64        `json:"weight" yaml:"weight"`
	Elapsed time.Duration `json:"elapsed" yaml:"elapsed"`
}

// Tree checks that tree is a spanning tree of input:
//
//  1. same vertex count (ErrVertexCount);
//  2. exactly V-1 edges, or none when V is 0 (ErrEdgeCount);
//  3. every edge exists in input with the same weight (ErrForeignEdge);
//  4. no cycle and a single component (ErrNotSpanning).
//
// Complexity: O(V + E_tree · deg) time, O(V) memory.
func Tree(input, tree *core.Graph) error {
	if input == nil || tree == nil {
		return ErrNilTree
	}

	n := input.VertexCount()
	if tree.VertexCount() != n {
		return fmt.Errorf("got %d, want %d: %w", tree.VertexCount(), n, ErrVertexCount)
	}

	want := n - 1
	if n == 0 {
		want = 0
	}
	if tree.EdgeCount() != want {
		return fmt.Errorf("got %d, want %d: %w", tree.EdgeCount(), want, ErrEdgeCount)
	}

	d := dsu.New(n)
	for v := 0; v < n; v++ {
		for _, e := range tree.EdgesOf(v) {
			if e.From > e.To {
				continue // each undirected edge is checked through its From<To copy
			}
			if !containsEdge(input, e) {
				return fmt.Errorf("%s: %w", e, ErrForeignEdge)
			}
			if !d.Unite(e.From, e.To) {
				return fmt.Errorf("cycle through %s: %w", e, ErrNotSpanning)
			}
		}
	}
	if d.HasMultipleComponents() {
		return fmt.Errorf("%d components: %w", d.Components(), ErrNotSpanning)
	}

	return nil
}

// containsEdge reports whether input has an edge e.From—e.To of e.Weight.
func containsEdge(input *core.Graph, e core.Edge) bool {
	if !input.HasEdge(e.From, e.To) {
		return false
	}
	for _, in := range input.EdgesOf(e.From) {
		if in.To == e.To && in.Weight == e.Weight {
			return true
		}
	}
	return false
}

// Agree checks that every result reports the same Weight as the first one.
// Fewer than two results trivially agree.
func Agree(results []Result) error {
	for i := 1; i < len(results); i++ {
		if results[i].Weight != results[0].Weight {
			return fmt.Errorf("%s=%d, %s=%d: %w",
				results[0].Method, results[0].Weight,
				results[i].Method, results[i].Weight,
				ErrWeightMismatch)
		}
	}
	return nil
}

// All runs Tree on every result and then Agree. The first failure is
// returned wrapped with the offending method name.
func All(input *core.Graph, results []Result) error {
	for _, r := range results {
		if err := Tree(input, r.Tree); err != nil {
			return fmt.Errorf("%s: %w", r.Method, err)
		}
	}
	return Agree(results)
}
