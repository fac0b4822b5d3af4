// Package mstbench builds and compares minimum spanning trees of undirected,
// weighted graphs.
//
// Three classic algorithms share one graph model and one contract:
//
//	Prim    : grows a single tree from vertex 0 with an indexed min-heap
//	Kruskal : sorts all edges once and joins components with a DSU
//	Borůvka : merges every component along its cheapest edge, round by round
//
// Every algorithm has the shape func(*core.Graph) (*core.Graph, error) and
// returns a new graph holding only the tree edges. Ties between equal
// weights are broken by edge id, so all three agree on the total weight
// whenever the input is connected.
//
// Layout:
//
//	core/      : Graph (adjacency list, doubled undirected edges), Edge, NoEdge
//	dsu/       : disjoint-set union with path compression and union by size
//	mst/       : Prim, Kruskal, Boruvka, method registry and Compute
//	verify/    : spanning-tree checks and cross-algorithm weight agreement
//	generator/ : seeded random connected graphs (sparse and dense modes)
//	bench/     : suites of generated graphs, timings and reports
//	cmd/       : the mstbench CLI (run, check)
//
// Quick example:
//
//	g := core.NewGraph(4)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(2, 3, 3)
//	_ = g.AddEdge(3, 0, 4)
//
//	tree, err := mst.Compute(g, mst.WithMethod(mst.MethodPrim))
//	// tree.TotalWeight() == 6
//
// Graphs are not synchronised. Build a graph first, then share it freely
// between readers.
package mstbench
