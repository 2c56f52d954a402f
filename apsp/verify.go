// SPDX-License-Identifier: MIT

package apsp

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tiledapsp/core"
	"github.com/katalvlaran/tiledapsp/dijkstra"
)

// verifyTolerance is the relative slack allowed between the two summation orders.
const verifyTolerance = 1e-9

// Verify re-derives up to sources rows of res with Dijkstra and compares them
// cell by cell. Sources are spread evenly over the node order. opts must be
// the options res was computed with (weight key and direction matter).
//
// Errors:
//   - ErrNilGraph; dijkstra.ErrNegativeWeight when g has negative lengths
//     (the oracle does not apply).
//   - ErrVerifyMismatch naming the first disagreeing pair found.
//   - ctx.Err() when cancelled between rows.
func Verify(ctx context.Context, g *core.Graph, res *Result, sources int, opts ...Option) error {
	if g == nil {
		return fmt.Errorf("Verify: %w", ErrNilGraph)
	}
	n := res.Nodes.Len()
	if n == 0 || sources <= 0 {
		return nil
	}
	o := gatherOptions(opts...)
	directed := g.Directed()
	if o.directed != nil {
		directed = *o.directed
	}

	resolved, err := resolveEdges(res.Nodes, graphEdges(g, o.weightKey, directed))
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	arcs := make([]dijkstra.Arc, len(resolved))
	for i, e := range resolved {
		arcs[i] = dijkstra.Arc{From: e.src, To: e.dst, Weight: e.w}
	}
	oracle, err := dijkstra.NewGraph(n, arcs, directed)
	if err != nil {
		return fmt.Errorf("Verify: %w", err)
	}

	k := min(sources, n)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, res.Workers))
	for s := 0; s < k; s++ {
		src := s * n / k
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			want, err := oracle.Distances(src)
			if err != nil {
				return err
			}
			got, err := res.Distances.Row(src)
			if err != nil {
				return err
			}
			for j := range want {
				if !closeEnough(got[j], want[j]) {
					return fmt.Errorf("Verify: %s→%s: tiled %g, oracle %g: %w",
						res.Nodes.ID(src), res.Nodes.ID(j), got[j], want[j], ErrVerifyMismatch)
				}
			}
			return nil
		})
	}

	return eg.Wait()
}

func closeEnough(got, want float64) bool {
	if math.IsInf(want, 1) || math.IsInf(got, 1) {
		return got == want
	}

	return math.Abs(got-want) <= verifyTolerance*math.Max(1, math.Abs(want))
}
