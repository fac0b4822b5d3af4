// SPDX-License-Identifier: MIT

package mst

import "container/heap"

// frontierItem is one vertex waiting to join Prim's tree, keyed by the weight
// of its cheapest known connecting edge.
type frontierItem struct {
	vertex int
	weight uint64
}

// frontier is an indexed binary min-heap over (weight, vertex) with native
// decrease-key. pos[v] is v's index in items, or -1 when v is absent.
type frontier struct {
	items []frontierItem
	pos   []int
}

func newFrontier(n int) *frontier {
	f := &frontier{pos: make([]int, n)}
	for i := range f.pos {
		f.pos[i] = -1
	}
	return f
}

// Len returns the number of queued vertices.
func (f *frontier) Len() int { return len(f.items) }

// Less orders by weight, then by lower vertex ID.
func (f *frontier) Less(i, j int) bool {
	a, b := f.items[i], f.items[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return a.vertex < b.vertex
}

// Swap exchanges two items and keeps pos in sync.
func (f *frontier) Swap(i, j int) {
	f.items[i], f.items[j] = f.items[j], f.items[i]
	f.pos[f.items[i].vertex] = i
	f.pos[f.items[j].vertex] = j
}

// Push appends an item; called by heap.Push only.
func (f *frontier) Push(x interface{}) {
	it := x.(frontierItem)
	f.pos[it.vertex] = len(f.items)
	f.items = append(f.items, it)
}

// Pop removes the last item; called by heap.Pop only.
func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	it := old[n-1]
	f.items = old[:n-1]
	f.pos[it.vertex] = -1
	return it
}

// set inserts v with key w, or lowers/raises its existing key in place.
// Complexity: O(log n).
func (f *frontier) set(v int, w uint64) {
	if i := f.pos[v]; i >= 0 {
		f.items[i].weight = w
		heap.Fix(f, i)
		return
	}
	heap.Push(f, frontierItem{vertex: v, weight: w})
}

// popMin removes and returns the vertex with the smallest (weight, vertex).
// Complexity: O(log n).
func (f *frontier) popMin() int {
	return heap.Pop(f).(frontierItem).vertex
}
