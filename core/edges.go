// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/GetEdge/Edges/EdgeCount,
//       plus adjacency bookkeeping and nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order (by numeric sequence of Edge.ID).
//   - nextEdgeID() is monotonic ("e" + decimal).

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix yields IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge between from and to, creating missing endpoints.
//
// Steps:
//  1. Validate IDs, weight and loops.
//  2. Build the Edge with the graph's default direction, apply opts, validate overrides.
//  3. Ensure endpoints via AddVertex.
//  4. Under muEdgeAdj: multi-edge check, catalogue insert, adjacency link (mirrored if undirected).
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMixedEdgesNotAllowed,
//     ErrEmptyAttrKey, ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	if e.Directed != g.directed && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}
	if _, ok := e.Attrs[""]; ok {
		return "", ErrEmptyAttrKey
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	e.ID = nextEdgeID(g)
	g.edges[e.ID] = e
	linkEdge(g, e)

	return e.ID, nil
}

// RemoveEdge deletes one edge and its mirror.
// Errors: ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	unlinkEdge(g, e)

	return nil
}

// HasEdge reports whether at least one edge from→to exists. Undirected edges
// are visible from both ends.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[from][to]) > 0
}

// GetEdge returns the edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(eid string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// linkEdge registers e in the adjacency buckets. Caller holds muEdgeAdj.
func linkEdge(g *Graph, e *Edge) {
	bucket(g, e.From, e.To)[e.ID] = struct{}{}
	if !e.Directed && e.From != e.To {
		bucket(g, e.To, e.From)[e.ID] = struct{}{}
	}
}

// unlinkEdge removes e from the adjacency buckets, pruning empty ones.
// Caller holds muEdgeAdj.
func unlinkEdge(g *Graph, e *Edge) {
	drop := func(from, to string) {
		if m := g.adjacency[from][to]; m != nil {
			delete(m, e.ID)
			if len(m) == 0 {
				delete(g.adjacency[from], to)
			}
		}
	}
	drop(e.From, e.To)
	if !e.Directed && e.From != e.To {
		drop(e.To, e.From)
	}
}

// bucket returns (creating if needed) the edge-ID set for from→to.
func bucket(g *Graph, from, to string) map[string]struct{} {
	inner := g.adjacency[from]
	if inner == nil {
		inner = make(map[string]map[string]struct{})
		g.adjacency[from] = inner
	}
	set := inner[to]
	if set == nil {
		set = make(map[string]struct{})
		inner[to] = set
	}

	return set
}

// nextEdgeID returns a new unique textual edge ID without fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric suffix of an ID produced by nextEdgeID.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)
	return n
}
