// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstbench/verify"
)

// ErrUnknownFormat indicates an unsupported report format.
var ErrUnknownFormat = errors.New("bench: unknown report format")

const (
	FormatTable  = "table"
	FormatSeries = "series"
	FormatJson   = "json"
	FormatYaml   = "yaml"
)

// Formats lists the supported report formats.
func Formats() []string {
	return []string{FormatTable, FormatSeries, FormatJson, FormatYaml}
}

// Point is one measured graph size of a suite.
type Point struct {
	Vertices int                      `json:"vertices" yaml:"vertices"`
	Edges    int                      `json:"edges" yaml:"edges"`
	Weight   uint64                   `json:"weight" yaml:"weight"`
	Timings  map[string]time.Duration `json:"timings" yaml:"timings"`
}

// SuiteReport holds the points of one suite run.
type SuiteReport struct {
	Suite   Suite    `json:"suite" yaml:"suite"`
	Methods []string `json:"methods" yaml:"methods"`
	Points  []Point  `json:"points" yaml:"points"`
}

// CheckReport holds the results of every algorithm on a single graph.
type CheckReport struct {
	Mode     string          `json:"mode" yaml:"mode"`
	Seed     int64           `json:"seed" yaml:"seed"`
	Vertices int             `json:"vertices" yaml:"vertices"`
	Edges    int             `json:"edges" yaml:"edges"`
	Results  []verify.Result `json:"results" yaml:"results"`
}

// Render writes reports to w in the given format.
func Render(w io.Writer, reports []*SuiteReport, format string) error {
	switch format {
	case FormatJson, FormatYaml:
		return encode(w, reports, format)
	case FormatTable:
		for _, r := range reports {
			if err := renderTable(w, r); err != nil {
				return err
			}
		}
		return nil
	case FormatSeries:
		for _, r := range reports {
			if err := renderSeries(w, r); err != nil {
				return err
			}
		}
		return nil
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

// RenderCheck writes a single-graph report in table, json or yaml format.
func RenderCheck(w io.Writer, r *CheckReport, format string) error {
	switch format {
	case FormatJson, FormatYaml:
		return encode(w, r, format)
	case FormatTable:
		if _, err := fmt.Fprintf(w, "graph: mode %s, seed %d, %s vertices, %s edges\n",
			r.Mode, r.Seed, humanize.Comma(int64(r.Vertices)), humanize.Comma(int64(r.Edges))); err != nil {
			return errors.Wrap(err, "cannot write report header")
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Method", "Edges", "Weight", "Time (µs)"})
		table.SetAlignment(tablewriter.ALIGN_RIGHT)
		table.SetAutoFormatHeaders(false)
		for _, res := range r.Results {
			edges := 0
			if res.Tree != nil {
				edges = res.Tree.EdgeCount()
			}
			table.Append([]string{
				res.Method,
				humanize.Comma(int64(edges)),
				humanize.Comma(int64(res.Weight)),
				humanize.Comma(res.Elapsed.Microseconds()),
			})
		}
		table.Render()
		return nil
	}
	return errors.Wrapf(ErrUnknownFormat, "%q", format)
}

func encode(w io.Writer, v any, format string) error {
	if format == FormatJson {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "cannot encode json report")
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "cannot encode yaml report")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, "cannot flush yaml report")
	}
	return nil
}

func renderTable(w io.Writer, r *SuiteReport) error {
	if _, err := fmt.Fprintf(w, "suite %s: mode %s, max vertices %s\n",
		r.Suite.Name, r.Suite.Mode, humanize.Comma(int64(r.Suite.MaxVertices))); err != nil {
		return errors.Wrap(err, "cannot write report header")
	}

	header := []string{"Vertices", "Edges", "Weight"}
	for _, m := range r.Methods {
		header = append(header, m+" (µs)")
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetAutoFormatHeaders(false)
	for _, p := range r.Points {
		row := []string{
			humanize.Comma(int64(p.Vertices)),
			humanize.Comma(int64(p.Edges)),
			humanize.Comma(int64(p.Weight)),
		}
		for _, m := range r.Methods {
			row = append(row, humanize.Comma(p.Timings[m].Microseconds()))
		}
		table.Append(row)
	}
	table.Render()
	return nil
}

// renderSeries prints one block per method, ready to paste into a plotting
// script:
//
//	Time of prim:
//	vertices_count = [0, 400, 800]
//	times = [0, 112, 240]
func renderSeries(w io.Writer, r *SuiteReport) error {
	var b strings.Builder
	fmt.Fprintf(&b, "-------------------------------\n")
	fmt.Fprintf(&b, "TEST %s, params: { mode: %s, max vertices count: %d }\n\n",
		r.Suite.Name, r.Suite.Mode, r.Suite.MaxVertices)

	vertices := make([]string, len(r.Points))
	for i, p := range r.Points {
		vertices[i] = strconv.Itoa(p.Vertices)
	}
	for _, m := range r.Methods {
		times := make([]string, len(r.Points))
		for i, p := range r.Points {
			times[i] = strconv.FormatInt(p.Timings[m].Microseconds(), 10)
		}
		fmt.Fprintf(&b, "Time of %s:\n", m)
		fmt.Fprintf(&b, "vertices_count = [%s]\n", strings.Join(vertices, ", "))
		fmt.Fprintf(&b, "times = [%s]\n\n", strings.Join(times, ", "))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "cannot write series report")
	}
	return nil
}
