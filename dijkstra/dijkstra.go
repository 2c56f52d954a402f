// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Graph is an immutable adjacency-list view over vertices 0..n-1.
// Distances may be called from many goroutines at once.
type Graph struct {
	adj [][]halfArc
}

// NewGraph builds the adjacency lists. When directed is false every arc is
// also inserted reversed.
//
// Validation happens before any allocation, in order:
//  1. n > 0 (ErrEmptyGraph).
//  2. every endpoint in [0, n) (ErrVertexOutOfRange).
//  3. every length finite (ErrBadWeight) and ≥ 0 (ErrNegativeWeight).
//
// Complexity: O(n + len(arcs)).
func NewGraph(n int, arcs []Arc, directed bool) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrEmptyGraph)
	}
	for i, a := range arcs {
		if a.From < 0 || a.From >= n || a.To < 0 || a.To >= n {
			return nil, fmt.Errorf("arc %d (%d→%d): %w", i, a.From, a.To, ErrVertexOutOfRange)
		}
		if math.IsNaN(a.Weight) || math.IsInf(a.Weight, 0) {
			return nil, fmt.Errorf("arc %d (%d→%d) weight=%g: %w", i, a.From, a.To, a.Weight, ErrBadWeight)
		}
		if a.Weight < 0 {
			return nil, fmt.Errorf("%w: arc %d→%d weight=%g", ErrNegativeWeight, a.From, a.To, a.Weight)
		}
	}

	adj := make([][]halfArc, n)
	for _, a := range arcs {
		adj[a.From] = append(adj[a.From], halfArc{to: a.To, w: a.Weight})
		if !directed && a.From != a.To {
			adj[a.To] = append(adj[a.To], halfArc{to: a.From, w: a.Weight})
		}
	}

	return &Graph{adj: adj}, nil
}

// Order returns the vertex count.
func (g *Graph) Order() int { return len(g.adj) }

// Distances returns the shortest path length from src to every vertex,
// +Inf where unreachable.
//
// Errors: ErrVertexOutOfRange when src is outside [0, n).
func (g *Graph) Distances(src int) ([]float64, error) {
	n := len(g.adj)
	if src < 0 || src >= n {
		return nil, fmt.Errorf("Distances(%d): %w", src, ErrVertexOutOfRange)
	}

	dist := make([]float64, n)
	inf := math.Inf(1)
	for v := range dist {
		dist[v] = inf
	}
	visited := make([]bool, n)
	dist[src] = 0

	pq := make(nodePQ, 0, n)
	heap.Push(&pq, nodeItem{id: src})
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, e := range g.adj[u] {
			nd := dist[u] + e.w
			// strict improvement only, equal ties would push duplicates
			if nd >= dist[e.to] {
				continue
			}
			dist[e.to] = nd
			heap.Push(&pq, nodeItem{id: e.to, dist: nd})
		}
	}

	return dist, nil
}
