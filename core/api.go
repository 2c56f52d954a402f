// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only configuration getters.

package core

// Directed reports the default directedness of new edges.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are allowed.
func (g *Graph) Weighted() bool { return g.weighted }

// Looped reports whether self-loops are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// MixedEdges reports whether per-edge direction overrides are allowed.
func (g *Graph) MixedEdges() bool { return g.allowMixed }
