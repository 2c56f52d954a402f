// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage behind the tiled all-pairs
// shortest-path engine.
//
// The package offers:
//
//   - Dense, a row-major float64 matrix with safe At/Set accessors and direct
//     buffer access (Raw) for kernels that own disjoint index ranges.
//   - NewDistance, which allocates an n×n distance matrix with 0 on the
//     diagonal and +Inf ("no path") elsewhere.
//   - Block and Partition, which tile [0, n) into half-open ranges whose last
//     member absorbs any remainder.
//   - FloydWarshall, the sequential reference closure.
//
// Memory is O(n²). Dense does no locking; callers coordinate writers.
package matrix
