// SPDX-License-Identifier: MIT

package apsp

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tiledapsp/matrix"
)

// Materialize converts d into {source: {target: distance}} keyed by node ID.
// Unreachable pairs hold math.Inf(1).
//
// Rows are built by up to workers goroutines into a pre-sized slice; the outer
// map is assembled after all rows are done, so no map is written concurrently.
// d must be nodes.Len() × nodes.Len(); a nil d yields an empty mapping.
//
// Complexity: O(n²) time and space.
func Materialize(d *matrix.Dense, nodes NodeList, workers int) map[string]map[string]float64 {
	n := nodes.Len()
	if d == nil || n == 0 {
		return map[string]map[string]float64{}
	}
	data, stride := d.Raw()

	rows := make([]map[string]float64, n)
	buildRow := func(i int) {
		base := i * stride
		row := make(map[string]float64, n)
		for j, id := range nodes.ids {
			row[id] = data[base+j]
		}
		rows[i] = row
	}

	if workers <= 1 || n == 1 {
		for i := 0; i < n; i++ {
			buildRow(i)
		}
	} else {
		var g errgroup.Group
		g.SetLimit(workers)
		for i := 0; i < n; i++ {
			g.Go(func() error {
				buildRow(i)
				return nil
			})
		}
		_ = g.Wait() // row builds cannot fail
	}

	out := make(map[string]map[string]float64, n)
	for i, id := range nodes.ids {
		out[id] = rows[i]
	}

	return out
}
