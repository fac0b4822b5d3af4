// SPDX-License-Identifier: MIT

// Package mst defines the uniform Algorithm signature, the method registry,
// configuration options and sentinel errors for MST computation.
package mst

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// ErrNilGraph indicates that an algorithm was handed a nil graph.
var ErrNilGraph = errors.New("mst: nil graph")

// ErrDisconnected indicates that Borůvka found no edge leaving any component
// while more than one component remained, so no spanning tree exists.
var ErrDisconnected = errors.New("mst: graph is disconnected")

// ErrRootOutOfRange indicates that PrimFrom was given a root that is not a
// vertex of the graph.
var ErrRootOutOfRange = errors.New("mst: root vertex out of range")

// ErrUnknownMethod indicates that a method name is not registered.
var ErrUnknownMethod = errors.New("mst: unknown method")

// Algorithm computes a minimum spanning tree of g and returns it as a new
// Graph over the same vertex set. Implementations never mutate g.
type Algorithm func(g *core.Graph) (*core.Graph, error)

// MethodPrim selects Prim's algorithm (grow one tree from a root).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MethodBoruvka selects Borůvka's algorithm (round-based component contraction).
const MethodBoruvka = "boruvka"

// Methods returns the registered method names in canonical order.
func Methods() []string {
	return []string{MethodPrim, MethodKruskal, MethodBoruvka}
}

// Lookup returns the Algorithm registered under name.
func Lookup(name string) (Algorithm, error) {
	switch name {
	case MethodPrim:
		return Prim, nil
	case MethodKruskal:
		return Kruskal, nil
	case MethodBoruvka:
		return Boruvka, nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
	}
}

// Options configures Compute.
//
// Fields:
//
//	Method string       : one of MethodPrim, MethodKruskal, MethodBoruvka.
//	Root   core.VertexID: start vertex for Prim; ignored by the others.
type Options struct {
	// Method to use.
	Method string

	// Root is the starting vertex for Prim's algorithm.
	Root core.VertexID
}

// Option configures Options.
type Option func(*Options)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithRoot returns an Option that sets the starting vertex for Prim.
func WithRoot(root core.VertexID) Option {
	return func(o *Options) { o.Root = root }
}

// DefaultOptions returns Options for Kruskal rooted at vertex 0.
func DefaultOptions() Options {
	return Options{Method: MethodKruskal, Root: 0}
}

// Compute resolves opts over DefaultOptions and runs the selected algorithm.
//
//	– MethodPrim:    PrimFrom(g, Root)
//	– MethodKruskal: Kruskal(g)
//	– MethodBoruvka: Boruvka(g)
//	– otherwise:     ErrUnknownMethod
func Compute(g *core.Graph, opts ...Option) (*core.Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Method == MethodPrim {
		return PrimFrom(g, o.Root)
	}
	algo, err := Lookup(o.Method)
	if err != nil {
		return nil, err
	}
	return algo(g)
}
