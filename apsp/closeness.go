// SPDX-License-Identifier: MIT

package apsp

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tiledapsp/core"
)

// Closeness returns the closeness centrality of every vertex of g, computed
// from the tiled all-pairs distances.
//
// For node u with r nodes able to reach it (u included) at total distance S:
//
//	c(u) = (r-1) / S                      when S > 0 and n > 1, else 0
//	c(u) *= (r-1) / (n-1)                 with WithWFImproved(true) (default)
//
// Distances are taken toward u (column u), which on directed graphs measures
// incoming paths. Options are those of Compute plus WithWFImproved.
func Closeness(ctx context.Context, g *core.Graph, opts ...Option) (map[string]float64, error) {
	res, err := Compute(ctx, g, opts...)
	if err != nil {
		return nil, fmt.Errorf("Closeness: %w", err)
	}
	o := gatherOptions(opts...)

	return closenessAll(res, o.wfImproved), nil
}

// ClosenessOf returns the closeness centrality of u alone.
// Errors: those of Compute, plus ErrUnknownNode when u is not a vertex of g.
func ClosenessOf(ctx context.Context, g *core.Graph, u string, opts ...Option) (float64, error) {
	if g != nil && !g.HasVertex(u) {
		return 0, fmt.Errorf("ClosenessOf(%q): %w", u, ErrUnknownNode)
	}
	res, err := Compute(ctx, g, opts...)
	if err != nil {
		return 0, fmt.Errorf("ClosenessOf(%q): %w", u, err)
	}
	col, _ := res.Nodes.IndexOf(u)
	o := gatherOptions(opts...)

	return closenessAt(res, col, o.wfImproved), nil
}

// closenessAll scores every column concurrently into a slice, then builds the map.
func closenessAll(res *Result, wf bool) map[string]float64 {
	n := res.Nodes.Len()
	scores := make([]float64, n)

	var g errgroup.Group
	g.SetLimit(max(1, res.Workers))
	for u := 0; u < n; u++ {
		g.Go(func() error {
			scores[u] = closenessAt(res, u, wf)
			return nil
		})
	}
	_ = g.Wait() // scoring cannot fail

	out := make(map[string]float64, n)
	for u, id := range res.Nodes.ids {
		out[id] = scores[u]
	}

	return out
}

// closenessAt scores column u of the distance matrix.
func closenessAt(res *Result, u int, wf bool) float64 {
	n := res.Nodes.Len()
	if n <= 1 {
		return 0
	}
	data, stride := res.Distances.Raw()

	var (
		reachable int
		total     float64
	)
	for v := 0; v < n; v++ {
		x := data[v*stride+u]
		if math.IsInf(x, 1) {
			continue
		}
		reachable++
		total += x
	}
	if total <= 0 {
		return 0
	}

	c := float64(reachable-1) / total
	if wf {
		c *= float64(reachable-1) / float64(n-1)
	}

	return c
}
