// SPDX-License-Identifier: MIT

// Package dsu implements a disjoint-set-union (union-find) structure over
// dense vertex indices 0..N-1.
//
// Every element starts as its own singleton set. Find returns a stable
// representative of an element's set; Unite merges two sets and is a no-op
// when they already coincide.
//
// Find walks to the root iteratively and then repoints every visited node
// directly at it (full path compression in two passes), so deep parent chains
// never grow the call stack. Unite links roots by size, keeping trees shallow.
// Neither optimisation is observable: representatives are only meaningful
// when compared with each other.
//
// Complexity: amortised near-O(1) (inverse Ackermann) per Find/Unite; O(N)
// for HasMultipleComponents and Components.
//
// A DSU is not safe for concurrent use: Find mutates parent links.
package dsu
