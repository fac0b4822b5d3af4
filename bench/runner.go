// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/mstbench/core"
	"github.com/katalvlaran/mstbench/generator"
	"github.com/katalvlaran/mstbench/mst"
	"github.com/katalvlaran/mstbench/verify"
)

type namedAlgorithm struct {
	name string
	fn   mst.Algorithm
}

// Runner runs a fixed list of algorithms over graphs.
type Runner struct {
	algorithms []namedAlgorithm
	logger     zerolog.Logger
}

// NewRunner returns a Runner over the given method names, or over every
// registered method when none are given.
func NewRunner(logger zerolog.Logger, methods ...string) (*Runner, error) {
	if len(methods) == 0 {
		methods = mst.Methods()
	}
	r := &Runner{logger: logger}
	for _, m := range methods {
		fn, err := mst.Lookup(m)
		if err != nil {
			return nil, errors.Wrap(err, "cannot create runner")
		}
		r.Register(m, fn)
	}
	return r, nil
}

// Register appends an algorithm under name.
func (r *Runner) Register(name string, fn mst.Algorithm) {
	r.algorithms = append(r.algorithms, namedAlgorithm{name: name, fn: fn})
}

// Methods returns the registered names in run order.
func (r *Runner) Methods() []string {
	names := make([]string, len(r.algorithms))
	for i, a := range r.algorithms {
		names[i] = a.name
	}
	return names
}

// Compare runs every algorithm on g and verifies the results. Results are
// returned even when verification fails, so callers can report them.
func (r *Runner) Compare(g *core.Graph) ([]verify.Result, error) {
	results := make([]verify.Result, 0, len(r.algorithms))
	for _, a := range r.algorithms {
		start := time.Now()
		tree, err := a.fn(g)
		if err != nil {
			return results, errors.Wrapf(err, "%s failed", a.name)
		}
		weight := tree.TotalWeight()
		results = append(results, verify.Result{
			Method:  a.name,
			Tree:    tree,
			Weight:  weight,
			Elapsed: time.Since(start),
		})
	}

	if err := verify.All(g, results); err != nil {
		return results, errors.Wrap(err, "test failed")
	}
	return results, nil
}

// Run executes suite s and returns its report. On failure the report holds
// every point measured before the failing one.
func (r *Runner) Run(ctx context.Context, s Suite) (*SuiteReport, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	report := &SuiteReport{Suite: s, Methods: r.Methods()}
	started := time.Now()
	r.logger.Info().
		Str("suite", s.Name).
		Str("mode", s.Mode.String()).
		Int("max_vertices", s.MaxVertices).
		Int("steps", s.Steps).
		Msg("suite started")

	for _, v := range s.VertexCounts() {
		if err := ctx.Err(); err != nil {
			return report, errors.Wrapf(err, "suite %s interrupted", s.Name)
		}

		if v == 0 {
			report.Points = append(report.Points, r.zeroPoint())
			continue
		}

		g, err := generator.Generate(v, s.Mode, generator.WithSeed(s.seedFor(v)))
		if err != nil {
			return report, errors.Wrapf(err, "suite %s: cannot generate graph", s.Name)
		}

		results, err := r.Compare(g)
		if err != nil {
			return report, errors.Wrapf(err, "suite %s: %d vertices", s.Name, v)
		}

		p := Point{
			Vertices: v,
			Edges:    g.EdgeCount(),
			Weight:   results[0].Weight,
			Timings:  make(map[string]time.Duration, len(results)),
		}
		for _, res := range results {
			p.Timings[res.Method] = res.Elapsed
		}
		report.Points = append(report.Points, p)

		r.logger.Debug().
			Str("suite", s.Name).
			Int("vertices", p.Vertices).
			Int("edges", p.Edges).
			Uint64("weight", p.Weight).
			Msg("point verified")
	}

	r.logger.Info().
		Str("suite", s.Name).
		Int("points", len(report.Points)).
		Dur("elapsed", time.Since(started)).
		Msg("suite completed")

	return report, nil
}

func (r *Runner) zeroPoint() Point {
	p := Point{Timings: make(map[string]time.Duration, len(r.algorithms))}
	for _, a := range r.algorithms {
		p.Timings[a.name] = 0
	}
	return p
}
