// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge value type, the NoEdge sentinel and sentinel errors.

package core

import (
	"errors"
	"fmt"
	"math"
)

// ErrVertexOutOfRange indicates that an edge endpoint is not a valid vertex
// index of the graph it is being inserted into.
var ErrVertexOutOfRange = errors.New("core: vertex out of range")

// VertexID identifies a vertex by its dense index in [0, VertexCount()).
type VertexID = int

// MaxVertexID is the largest representable VertexID. It is only used by the
// NoEdge sentinel and never names a real vertex.
const MaxVertexID VertexID = math.MaxInt

// Edge is one directed copy of an undirected connection.
//
// Edges are plain values: copying an Edge never aliases graph storage.
type Edge struct {
	// From is the vertex whose adjacency list holds this copy.
	From VertexID

	// To is the opposite endpoint.
	To VertexID

	// Weight is the non-negative cost of the connection.
	Weight uint64

	// ID is the graph-wide insertion sequence number of this copy.
	ID uint64
}

// NoEdge is the "no edge yet" sentinel: every field holds its maximum value,
// so any real edge compares strictly cheaper by weight.
var NoEdge = Edge{
	From:   MaxVertexID,
	To:     MaxVertexID,
	Weight: math.MaxUint64,
	ID:     math.MaxUint64,
}

// IsNone reports whether e is the NoEdge sentinel.
func (e Edge) IsNone() bool { return e == NoEdge }

// Less orders edges by (Weight, ID). It is the tie-breaking order used by the
// MST algorithms: on equal weight the earlier inserted copy wins.
func (e Edge) Less(o Edge) bool {
	if e.Weight != o.Weight {
		return e.Weight < o.Weight
	}
	return e.ID < o.ID
}

// String renders e as "from-to(weight)#id".
func (e Edge) String() string {
	if e.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%d-%d(%d)#%d", e.From, e.To, e.Weight, e.ID)
}
