// SPDX-License-Identifier: MIT

package dsu

// DSU is a union-find structure over elements 0..Len()-1.
type DSU struct {
	parent []int
	size   []int // valid for roots only
	sets   int
}

// New returns a DSU of n singleton sets. A negative n is treated as zero.
// Complexity: O(n).
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n),
		size:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Len returns the number of elements.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the representative of v's set and compresses the path from v
// to it. v must be in [0, Len()).
func (d *DSU) Find(v int) int {
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for v != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}
	return root
}

// Unite merges the sets containing a and b. It reports whether a merge took
// place; false means a and b were already in the same set.
func (d *DSU) Unite(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.sets--
	return true
}

// Same reports whether a and b belong to the same set.
func (d *DSU) Same(a, b int) bool { return d.Find(a) == d.Find(b) }

// Components returns the current number of disjoint sets.
// Complexity: O(1).
func (d *DSU) Components() int { return d.sets }

// HasMultipleComponents reports whether any element's representative differs
// from element 0's. An empty DSU has no components and reports false.
// Complexity: O(n) Find calls.
func (d *DSU) HasMultipleComponents() bool {
	if len(d.parent) == 0 {
		return false
	}
	root := d.Find(0)
	for v := 1; v < len(d.parent); v++ {
		if d.Find(v) != root {
			return true
		}
	}
	return false
}
