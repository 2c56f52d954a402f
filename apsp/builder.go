// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tiledapsp/matrix"
)

const opBuild = "BuildDistanceMatrix"

// Ingestion tuning.
const (
	// sequentialIngestMax is the edge count up to which ingestion stays on the
	// calling goroutine.
	sequentialIngestMax = 4096

	// rowLockStripes bounds the number of row mutexes; row i uses lock i%stripes.
	rowLockStripes = 256
)

// WeightedEdge is one (source, target, weight) triple fed to the builder.
type WeightedEdge struct {
	From   string
	To     string
	Weight float64
}

// indexedEdge is a WeightedEdge with endpoints resolved to matrix positions.
type indexedEdge struct {
	src, dst int
	w        float64
}

// BuildDistanceMatrix allocates the n×n distance matrix for nodes and merges
// every edge into it by minimum.
//
// Behavior highlights:
//   - Diagonal 0, +Inf elsewhere before ingestion.
//   - Each edge writes min(current, w) at [src][dst], and at [dst][src] when
//     directed is false. Parallel edges keep the smallest weight regardless of
//     order; a negative self-loop lowers the diagonal.
//   - All edges are validated before the matrix is allocated.
//   - Large edge sets are ingested by up to workers goroutines; every
//     compare-and-write holds the owning row's stripe lock.
//
// Errors:
//   - ErrBadNodeList for an empty node list.
//   - ErrUnknownNode for an endpoint not in nodes.
//   - ErrInvalidWeight for NaN or ±Inf weights.
//
// Complexity: O(n² + E) time, O(n²) space.
func BuildDistanceMatrix(nodes NodeList, edges []WeightedEdge, directed bool, workers int) (*matrix.Dense, error) {
	n := nodes.Len()
	if n == 0 {
		return nil, fmt.Errorf("%s: empty node list: %w", opBuild, ErrBadNodeList)
	}

	resolved, err := resolveEdges(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	d, err := matrix.NewDistance(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	if workers <= 1 || len(resolved) <= sequentialIngestMax {
		data, stride := d.Raw()
		for _, e := range resolved {
			mergeMin(data, e.src*stride+e.dst, e.w)
			if !directed {
				mergeMin(data, e.dst*stride+e.src, e.w)
			}
		}

		return d, nil
	}

	ingestConcurrent(d, resolved, directed, workers)

	return d, nil
}

// resolveEdges maps endpoints to positions and rejects unusable weights.
func resolveEdges(nodes NodeList, edges []WeightedEdge) ([]indexedEdge, error) {
	out := make([]indexedEdge, len(edges))
	for i, e := range edges {
		src, ok := nodes.IndexOf(e.From)
		if !ok {
			return nil, fmt.Errorf("edge %d: source %q: %w", i, e.From, ErrUnknownNode)
		}
		dst, ok := nodes.IndexOf(e.To)
		if !ok {
			return nil, fmt.Errorf("edge %d: target %q: %w", i, e.To, ErrUnknownNode)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return nil, fmt.Errorf("edge %d (%s→%s): %v: %w", i, e.From, e.To, e.Weight, ErrInvalidWeight)
		}
		out[i] = indexedEdge{src: src, dst: dst, w: e.Weight}
	}

	return out, nil
}

// ingestConcurrent splits edges into one chunk per worker. Writes to row r are
// serialised by stripe lock r%rowLockStripes, so concurrent merges of parallel
// edges always converge to the minimum.
func ingestConcurrent(d *matrix.Dense, edges []indexedEdge, directed bool, workers int) {
	data, stride := d.Raw()
	stripes := min(rowLockStripes, stride)
	locks := make([]sync.Mutex, stripes)

	write := func(row, col int, w float64) {
		mu := &locks[row%stripes]
		mu.Lock()
		mergeMin(data, row*stride+col, w)
		mu.Unlock()
	}

	chunk := (len(edges) + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < len(edges); lo += chunk {
		part := edges[lo:min(lo+chunk, len(edges))]
		g.Go(func() error {
			for _, e := range part {
				write(e.src, e.dst, e.w)
				if !directed {
					write(e.dst, e.src, e.w)
				}
			}
			return nil
		})
	}
	_ = g.Wait() // ingestion cannot fail after resolveEdges
}

// mergeMin stores w at off when it improves the current value.
func mergeMin(data []float64, off int, w float64) {
	if w < data[off] {
		data[off] = w
	}
}
