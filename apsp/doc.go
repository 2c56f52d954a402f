// SPDX-License-Identifier: MIT

// Package apsp computes all-pairs shortest paths with a tiled, block-decomposed
// Floyd–Warshall.
//
// The n×n distance matrix is split into square tiles whose edge length (the
// blocking factor) is picked by SelectBlockingFactor. For every primary block p
// the executor runs three dependent phases separated by barriers:
//
//  1. pivot: relax the diagonal tile (p,p);
//  2. cross: relax every tile in row p and column p, concurrently;
//  3. remaining: relax every other tile, concurrently.
//
// Tiles written in the same phase never overlap, so the matrix is shared
// without locks. When n is not a multiple of the factor the last block absorbs
// the remainder.
//
// Entry points:
//
//   - Compute / AllPairs: graph in, distances out.
//   - Closeness / ClosenessOf: closeness centrality on top of the same engine.
//   - BuildDistanceMatrix, Executor.Run and Materialize: the individual stages.
//   - Verify: re-derives sampled rows with Dijkstra (non-negative lengths).
//
// Unreachable pairs are reported as math.Inf(1). Negative edge weights are
// accepted; negative cycles are not detected and yield undefined distances.
//
// Observability: spans are emitted through the global OpenTelemetry tracer,
// Prometheus collectors are registered on the default registry, and debug logs
// go to the *slog.Logger supplied with WithLogger.
package apsp
