package core_test

import (
	"testing"

	"github.com/katalvlaran/mstbench/core"
)

// BenchmarkAddEdge measures appending edges along a ring of 1000 vertices.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1000
	g := core.NewGraph(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(i%n, (i+1)%n, uint64(i))
	}
}

// BenchmarkHasEdge measures neighbour-set lookups on a dense row.
func BenchmarkHasEdge(b *testing.B) {
	const n = 1000
	g := core.NewGraph(n)
	for v := 1; v < n; v++ {
		_ = g.AddEdge(0, v, uint64(v))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.HasEdge(0, i%n)
	}
}
