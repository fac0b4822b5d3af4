// SPDX-License-Identifier: MIT

// Package bench drives the MST algorithms over generated graphs, times them,
// verifies their results against each other and renders reports.
//
// A Suite describes a family of graphs (mode, maximum size, number of steps,
// seed). Runner.Run generates one graph per step, runs every registered
// algorithm on it, checks each tree with verify.All and records one Point
// per step. The first verification failure stops the suite.
//
// Timings cover the algorithm call plus summing the tree weight, which is
// what a caller needs before it can compare results.
package bench
