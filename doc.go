// SPDX-License-Identifier: MIT

// Package tiledapsp computes all-pairs shortest paths over in-memory graphs
// with a blocked (tiled) Floyd–Warshall that relaxes independent tiles in
// parallel.
//
// Layout:
//
//	core/      thread-safe Graph, Vertex and Edge types with numeric edge attributes
//	matrix/    row-major Dense distance matrix, Block ranges, reference Floyd–Warshall
//	apsp/      block-size selection, distance-matrix builder, tiled executor,
//	           closeness centrality and Dijkstra cross-checks
//	dijkstra/  single-source oracle over index-addressed graphs
//	builder/   deterministic topology generators (path, cycle, grid, random …)
//	cmd/       the tiledapsp command
//
// Quick start:
//
//	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 2)
//	dist, err := apsp.AllPairs(ctx, g, apsp.WithWorkers(-1))
//	// dist["A"]["C"] == 3
//
// Rows of the distance matrix are owned by exactly one tile per phase, so the
// engine needs no locks on the matrix; barriers between phases order the writes.
//
//	go get github.com/katalvlaran/tiledapsp
package tiledapsp
