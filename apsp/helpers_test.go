// SPDX-License-Identifier: MIT

package apsp_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiledapsp/apsp"
	"github.com/katalvlaran/tiledapsp/core"
	"github.com/katalvlaran/tiledapsp/matrix"
)

// nodeID names vertex i so that lexicographic order equals numeric order.
func nodeID(i int) string { return fmt.Sprintf("v%03d", i) }

// randomGraph builds a reproducible graph with integer weights. Directed
// graphs may carry negative weights derived from vertex potentials
// (w = base + p[u] - p[v]), which rules out negative cycles.
func randomGraph(t *testing.T, seed int64, n int, density float64, directed, negative bool) *core.Graph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph(core.WithDirected(directed), core.WithWeighted(), core.WithMultiEdges())

	potential := make([]float64, n)
	for i := range potential {
		require.NoError(t, g.AddVertex(nodeID(i)))
		if negative && directed {
			potential[i] = float64(rng.Intn(20))
		}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || rng.Float64() >= density {
				continue
			}
			w := float64(rng.Intn(9)+1) + potential[u] - potential[v]
			_, err := g.AddEdge(nodeID(u), nodeID(v), w)
			require.NoError(t, err)
		}
	}

	return g
}

// naive computes the reference distances with the sequential untiled closure
// over the same initial matrix the engine builds.
func naive(t *testing.T, g *core.Graph, directed bool) (*matrix.Dense, apsp.NodeList) {
	t.Helper()
	nodes, err := apsp.NewNodeList(g.Vertices())
	require.NoError(t, err)

	edges := make([]apsp.WeightedEdge, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		edges = append(edges, apsp.WeightedEdge{From: e.From, To: e.To, Weight: e.Weight})
	}
	d, err := apsp.BuildDistanceMatrix(nodes, edges, directed, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.FloydWarshall(d))

	return d, nodes
}

// cycle4 is the directed 4-cycle 0→1→2→3→0 with unit weights.
func cycle4(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := 0; i < 4; i++ {
		_, err := g.AddEdge(fmt.Sprint(i), fmt.Sprint((i+1)%4), 1)
		require.NoError(t, err)
	}

	return g
}
