// SPDX-License-Identifier: MIT

// Package core defines the in-memory Graph consumed by the all-pairs
// shortest-path engine: a thread-safe catalogue of vertices and weighted edges.
//
// Graph behaviour is fixed at construction through GraphOption values:
//
//   - WithDirected(bool): default direction of new edges.
//   - WithWeighted(): allow non-zero float64 weights.
//   - WithMultiEdges(), WithLoops(): permit parallel edges and self-loops.
//   - WithMixedEdges(): allow per-edge WithEdgeDirected overrides.
//
// Edges may carry named numeric attributes (WithEdgeAttr) so that callers can
// pick which quantity acts as the edge length at query time.
//
// Determinism:
//
//   - Vertices() is sorted lexicographically.
//   - Edges() is sorted by insertion sequence ("e1", "e2", ...).
//
// Concurrency: muVert guards the vertex catalogue and muEdgeAdj guards edges and
// adjacency. Lock order is always muVert → muEdgeAdj.
package core
