// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest path lengths over an
// index-addressed graph with non-negative float64 arc lengths.
//
// It serves as an independent oracle for the tiled all-pairs engine: a row of
// the all-pairs matrix must equal the Dijkstra distances from the same source.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per source, lazy decrease-key on a binary heap.
//   - Space: O(V + E).
//
// Unreachable vertices report +Inf. Parallel arcs and self-loops are allowed;
// negative lengths are rejected when the graph is built.
package dijkstra
