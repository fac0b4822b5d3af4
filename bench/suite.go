// SPDX-License-Identifier: MIT

package bench

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/mstbench/generator"
)

// ErrInvalidSuite indicates a Suite that cannot produce any graph.
var ErrInvalidSuite = errors.New("bench: invalid suite")

// Suite is a family of generated graphs of growing size.
type Suite struct {
	Name        string         `mapstructure:"name" yaml:"name" json:"name"`
	Mode        generator.Mode `mapstructure:"mode" yaml:"mode" json:"mode"`
	MaxVertices int            `mapstructure:"max_vertices" yaml:"max_vertices" json:"max_vertices"`
	Steps       int            `mapstructure:"steps" yaml:"steps" json:"steps"`
	Seed        int64          `mapstructure:"seed" yaml:"seed" json:"seed"`
}

// DefaultSuites mirrors the classic comparison: sparse graphs up to 10000
// vertices and dense graphs up to 1000 vertices, 25 steps each.
func DefaultSuites() []Suite {
	return []Suite{
		{Name: "sparse", Mode: generator.ModeSparse, MaxVertices: 10000, Steps: 25},
		{Name: "dense", Mode: generator.ModeDense, MaxVertices: 1000, Steps: 25},
	}
}

// Validate checks the suite parameters.
func (s Suite) Validate() error {
	if s.Name == "" {
		return errors.Wrap(ErrInvalidSuite, "empty name")
	}
	if _, err := generator.ParseMode(string(s.Mode)); err != nil {
		return errors.Wrapf(ErrInvalidSuite, "suite %s: %v", s.Name, err)
	}
	if s.MaxVertices < 1 {
		return errors.Wrapf(ErrInvalidSuite, "suite %s: max_vertices must be greater than 0 got %d", s.Name, s.MaxVertices)
	}
	if s.Steps < 1 {
		return errors.Wrapf(ErrInvalidSuite, "suite %s: steps must be greater than 0 got %d", s.Name, s.Steps)
	}
	return nil
}

// VertexCounts returns 0, step, 2·step, … below MaxVertices with
// step = MaxVertices/Steps (at least 1).
func (s Suite) VertexCounts() []int {
	step := s.MaxVertices / s.Steps
	if step < 1 {
		step = 1
	}
	counts := make([]int, 0, s.MaxVertices/step+1)
	for v := 0; v < s.MaxVertices; v += step {
		counts = append(counts, v)
	}
	return counts
}

// seedFor derives the generator seed of the graph with v vertices.
func (s Suite) seedFor(v int) int64 {
	return s.Seed + int64(v)
}
