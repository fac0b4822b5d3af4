// SPDX-License-Identifier: MIT

package generator

import (
	"fmt"

	"github.com/katalvlaran/mstbench/core"
)

// Mode selects how many extra edges are added on top of the path backbone.
type Mode string

const (
	// ModeSparse keeps a pair with probability 1/n.
	ModeSparse Mode = "sparse"

	// ModeDense keeps a pair with probability 1 - 1/n.
	ModeDense Mode = "dense"
)

// Modes returns the supported modes in canonical order.
func Modes() []Mode { return []Mode{ModeSparse, ModeDense} }

// String returns the mode name.
func (m Mode) String() string { return string(m) }

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSparse, ModeDense:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownMode)
	}
}

const methodGenerate = "Generate"

// Generate returns a connected graph over n vertices.
//
// Steps:
//  1. Add the path edges (i, i+1) for i in [0, n-2].
//  2. For i asc and j in [i+2, n) asc, draw x ∈ [0,1) and add (i, j) when the
//     mode keeps it (see package doc).
//
// Errors: ErrTooFewVertices when n < 1; ErrUnknownMode for an invalid mode.
// Complexity: O(n²) draws, O(n + E) memory.
func Generate(n int, mode Mode, opts ...Option) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodGenerate, n, ErrTooFewVertices)
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	cfg := newConfig(opts...)
	rng := cfg.rng
	g := core.NewGraph(n)

	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(i, i+1, cfg.weightFn(rng)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodGenerate, err)
		}
	}

	p := 1 / float64(n)
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			x := rng.Float64()
			keep := x < p
			if mode == ModeDense {
				keep = x > p
			}
			if !keep {
				continue
			}
			if err := g.AddEdge(i, j, cfg.weightFn(rng)); err != nil {
				return nil, fmt.Errorf("%s: %w", methodGenerate, err)
			}
		}
	}

	return g, nil
}
