// SPDX-License-Identifier: MIT

package apsp

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/tiledapsp/core"
	"github.com/katalvlaran/tiledapsp/matrix"
)

const opCompute = "Compute"

// Result is the outcome of one all-pairs computation.
type Result struct {
	// Nodes orders the rows and columns of Distances.
	Nodes NodeList

	// Distances holds d[i][j] = shortest path length from Nodes.ID(i) to
	// Nodes.ID(j), +Inf when unreachable. nil when the graph is empty.
	Distances *matrix.Dense

	// BlockingFactor is the tile edge used; 0 when the tiled executor was
	// skipped (n ≤ 1).
	BlockingFactor int

	// Irregular reports that the last block is wider than BlockingFactor.
	Irregular bool

	// Workers is the resolved pool size.
	Workers int

	// RunID correlates logs and spans of this computation.
	RunID string
}

// Distance returns the shortest path length from → to.
// Errors: ErrUnknownNode when either ID is not in Nodes.
func (r *Result) Distance(from, to string) (float64, error) {
	i, ok := r.Nodes.IndexOf(from)
	if !ok {
		return 0, fmt.Errorf("Distance: source %q: %w", from, ErrUnknownNode)
	}
	j, ok := r.Nodes.IndexOf(to)
	if !ok {
		return 0, fmt.Errorf("Distance: target %q: %w", to, ErrUnknownNode)
	}

	return r.Distances.At(i, j)
}

// Map materialises the distances as {source: {target: distance}}.
func (r *Result) Map() map[string]map[string]float64 {
	return Materialize(r.Distances, r.Nodes, r.Workers)
}

// Compute runs the tiled all-pairs shortest-path engine on g.
//
// Steps:
//  1. Resolve options, workers and the node ordering (ErrBadNodeList before
//     any matrix is allocated).
//  2. Extract (from, to, length) triples using the weight key.
//  3. Build the distance matrix (merge-by-minimum).
//  4. Choose the blocking factor (explicit or SelectBlockingFactor(n, workers)).
//  5. Run the Executor.
//
// Degenerate graphs: n == 0 yields an empty Result; n == 1 yields {v: {v: 0}}
// without invoking the executor.
//
// Errors:
//   - ErrNilGraph, ErrInvalidWorkers, ErrBadNodeList, ErrInvalidWeight, ErrAborted.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (res *Result, err error) {
	if g == nil {
		return nil, fmt.Errorf("%s: %w", opCompute, ErrNilGraph)
	}
	o := gatherOptions(opts...)
	workers, err := o.resolveWorkers()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	runID := uuid.NewString()
	logger := o.logger.With(slog.String("run_id", runID))

	ctx, span := startSpan(ctx, "apsp.Compute",
		attribute.String("run_id", runID),
		attribute.Int("workers", workers),
		attribute.String("weight_key", o.weightKey),
	)
	defer span.End()
	defer func() {
		if err != nil {
			_ = failSpan(span, err)
		}
	}()

	nodes, err := resolveNodeList(g, o.nodeList)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	n := nodes.Len()
	directed := g.Directed()
	if o.directed != nil {
		directed = *o.directed
	}
	span.SetAttributes(attribute.Int("n", n), attribute.Bool("directed", directed))
	matrixNodes.Observe(float64(n))

	res = &Result{Nodes: nodes, Workers: workers, RunID: runID}
	switch n {
	case 0:
		logger.Debug("empty graph, nothing to relax")
		return res, nil
	case 1:
		res.Distances, err = matrix.NewDistance(1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opCompute, err)
		}
		return res, nil
	}

	edges := graphEdges(g, o.weightKey, directed)
	_, buildSpan := startSpan(ctx, "apsp.BuildDistanceMatrix",
		attribute.Int("n", n),
		attribute.Int("edges", len(edges)),
	)
	res.Distances, err = BuildDistanceMatrix(nodes, edges, directed, workers)
	if err != nil {
		_ = failSpan(buildSpan, err)
		buildSpan.End()
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}
	buildSpan.End()

	if o.blockingFactor > 0 {
		res.BlockingFactor = min(o.blockingFactor, n)
		res.Irregular = n%res.BlockingFactor != 0
	} else {
		res.BlockingFactor, res.Irregular = SelectBlockingFactor(n, workers)
	}
	span.SetAttributes(
		attribute.Int("factor", res.BlockingFactor),
		attribute.Bool("irregular", res.Irregular),
	)
	logger.Debug("distance matrix built",
		slog.Int("n", n),
		slog.Int("edges", len(edges)),
		slog.Bool("directed", directed),
		slog.Int("factor", res.BlockingFactor),
		slog.Bool("irregular", res.Irregular),
	)

	if err = NewExecutor(workers, logger).Run(ctx, res.Distances, res.BlockingFactor); err != nil {
		return nil, fmt.Errorf("%s: %w", opCompute, err)
	}

	return res, nil
}

// AllPairs is Compute followed by Result.Map.
func AllPairs(ctx context.Context, g *core.Graph, opts ...Option) (map[string]map[string]float64, error) {
	res, err := Compute(ctx, g, opts...)
	if err != nil {
		return nil, err
	}

	return res.Map(), nil
}

// graphEdges lists g's edges as length triples in Edges() order. In a
// directed computation over a mixed graph, undirected edges are emitted in
// both directions.
func graphEdges(g *core.Graph, key string, directed bool) []WeightedEdge {
	src := g.Edges()
	out := make([]WeightedEdge, 0, len(src))
	mixed := g.MixedEdges()
	for _, e := range src {
		w := edgeLength(g, e, key)
		out = append(out, WeightedEdge{From: e.From, To: e.To, Weight: w})
		if directed && mixed && !e.Directed && e.From != e.To {
			out = append(out, WeightedEdge{From: e.To, To: e.From, Weight: w})
		}
	}

	return out
}

// edgeLength resolves the length of e under key:
//
//	""                         ⇒ 1
//	core.WeightAttr (weighted) ⇒ e.Weight
//	otherwise                  ⇒ e.Attrs[key], or 1 when absent
func edgeLength(g *core.Graph, e *core.Edge, key string) float64 {
	if key == "" {
		return 1
	}
	if key == core.WeightAttr && g.Weighted() {
		return e.Weight
	}
	if v, ok := e.Attr(key); ok {
		return v
	}

	return 1
}
