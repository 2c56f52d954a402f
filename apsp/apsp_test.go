// SPDX-License-Identifier: MIT

package apsp_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiledapsp/apsp"
	"github.com/katalvlaran/tiledapsp/core"
)

var inf = math.Inf(1)

func TestCompute_MatchesNaive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		n        int
		density  float64
		directed bool
		negative bool
	}{
		{"undirected sparse", 23, 0.08, false, false},
		{"undirected dense", 30, 0.4, false, false},
		{"directed sparse", 29, 0.06, true, false},
		{"directed negative weights", 36, 0.2, true, true},
		{"directed prime n", 31, 0.15, true, true},
	}

	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := randomGraph(t, int64(100+i), tc.n, tc.density, tc.directed, tc.negative)
			want, _ := naive(t, g, tc.directed)

			for _, workers := range []int{1, 3, 8} {
				res, err := apsp.Compute(context.Background(), g, apsp.WithWorkers(workers))
				require.NoError(t, err)
				require.True(t, want.Equal(res.Distances),
					"workers=%d factor=%d irregular=%v\nwant:\n%v\ngot:\n%v",
					workers, res.BlockingFactor, res.Irregular, want, res.Distances)
			}
		})
	}
}

// The final matrix must not depend on the tile edge, including 1, proper
// divisors, non-divisors (irregular tail) and a single whole-matrix tile.
func TestCompute_BlockingFactorInvariance(t *testing.T) {
	t.Parallel()

	const n = 24
	g := randomGraph(t, 7, n, 0.15, true, true)
	want, _ := naive(t, g, true)

	for _, f := range []int{1, 2, 3, 4, 5, 6, 7, 11, 12, 23, 24, 100} {
		res, err := apsp.Compute(context.Background(), g,
			apsp.WithWorkers(4), apsp.WithBlockingFactor(f))
		require.NoError(t, err)
		assert.Equal(t, min(f, n), res.BlockingFactor)
		assert.Equal(t, n%min(f, n) != 0, res.Irregular, "factor %d", f)
		require.True(t, want.Equal(res.Distances), "factor %d", f)
	}
}

// A prime n takes the irregular fallback path when the factor is chosen
// automatically.
func TestCompute_PrimeFallback(t *testing.T) {
	t.Parallel()

	const n = 13
	g := randomGraph(t, 13, n, 0.3, false, false)
	want, _ := naive(t, g, false)

	res, err := apsp.Compute(context.Background(), g, apsp.WithWorkers(4))
	require.NoError(t, err)
	assert.True(t, res.Irregular)
	assert.Equal(t, 4, res.BlockingFactor)
	require.True(t, want.Equal(res.Distances))
}

func TestCompute_Idempotent(t *testing.T) {
	t.Parallel()

	g := randomGraph(t, 3, 20, 0.2, true, true)
	res, err := apsp.Compute(context.Background(), g, apsp.WithWorkers(4))
	require.NoError(t, err)

	again := res.Distances.CloneDense()
	ex := apsp.NewExecutor(4, nil)
	require.NoError(t, ex.Run(context.Background(), again, res.BlockingFactor))
	require.True(t, res.Distances.Equal(again))
}

func TestCompute_FourCycle(t *testing.T) {
	t.Parallel()

	res, err := apsp.Compute(context.Background(), cycle4(t), apsp.WithWorkers(2), apsp.WithBlockingFactor(2))
	require.NoError(t, err)

	check := func(from, to string, want float64) {
		got, err := res.Distance(from, to)
		require.NoError(t, err)
		assert.Equal(t, want, got, "%s→%s", from, to)
	}
	check("0", "3", 3)
	check("3", "0", 1)
	check("0", "0", 0)
	check("2", "1", 3)

	_, err = res.Distance("0", "nope")
	require.ErrorIs(t, err, apsp.ErrUnknownNode)
}

func TestCompute_MultiEdgeMinimum(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMultiEdges())
	_, err := g.AddEdge("u", "v", 5)
	require.NoError(t, err)
	_, err = g.AddEdge("u", "v", 2)
	require.NoError(t, err)

	got, err := apsp.AllPairs(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got["u"]["v"])
	assert.Equal(t, inf, got["v"]["u"])
}

func TestCompute_UndirectedSymmetry(t *testing.T) {
	t.Parallel()

	g := randomGraph(t, 11, 27, 0.12, false, false)
	res, err := apsp.Compute(context.Background(), g, apsp.WithWorkers(3))
	require.NoError(t, err)

	n := res.Nodes.Len()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, _ := res.Distances.At(i, j)
			b, _ := res.Distances.At(j, i)
			require.Equal(t, a, b, "(%d,%d)", i, j)
		}
	}
}

func TestCompute_DisconnectedStaysInfinite(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	for _, e := range [][2]string{{"a", "b"}, {"b", "c"}, {"x", "y"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	require.NoError(t, g.AddVertex("lonely"))

	got, err := apsp.AllPairs(context.Background(), g, apsp.WithBlockingFactor(2), apsp.WithWorkers(2))
	require.NoError(t, err)

	assert.Equal(t, 2.0, got["a"]["c"])
	assert.Equal(t, 1.0, got["y"]["x"])
	for _, far := range []string{"x", "y", "lonely"} {
		assert.Equal(t, inf, got["a"][far], "a→%s", far)
		assert.Equal(t, inf, got[far]["c"], "%s→c", far)
	}
	assert.Equal(t, 0.0, got["lonely"]["lonely"])
}

func TestCompute_DegenerateSizes(t *testing.T) {
	t.Parallel()

	empty, err := apsp.AllPairs(context.Background(), core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, empty)

	g := core.NewGraph()
	require.NoError(t, g.AddVertex("solo"))
	res, err := apsp.Compute(context.Background(), g)
	require.NoError(t, err)
	assert.Zero(t, res.BlockingFactor, "executor is skipped for n == 1")
	if diff := cmp.Diff(map[string]map[string]float64{"solo": {"solo": 0}}, res.Map()); diff != "" {
		t.Fatalf("single node mapping (-want +got):\n%s", diff)
	}
}

func TestCompute_NodeListValidation(t *testing.T) {
	t.Parallel()

	g := cycle4(t)
	tests := []struct {
		name string
		ids  []string
	}{
		{"too short", []string{"0", "1", "2"}},
		{"too long", []string{"0", "1", "2", "3", "4"}},
		{"duplicate", []string{"0", "1", "1", "3"}},
		{"unknown", []string{"0", "1", "2", "9"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := apsp.Compute(context.Background(), g, apsp.WithNodeList(tc.ids))
			require.ErrorIs(t, err, apsp.ErrBadNodeList)
		})
	}

	// A valid permutation reorders rows and columns.
	res, err := apsp.Compute(context.Background(), g, apsp.WithNodeList([]string{"3", "2", "1", "0"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2", "1", "0"}, res.Nodes.IDs())
	d, err := res.Distances.At(0, 3) // 3 → 0
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}

func TestCompute_NilGraphAndWorkers(t *testing.T) {
	t.Parallel()

	_, err := apsp.Compute(context.Background(), nil)
	require.ErrorIs(t, err, apsp.ErrNilGraph)

	res, err := apsp.Compute(context.Background(), cycle4(t), apsp.WithWorkers(-1))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Workers, 1)
	assert.NotEmpty(t, res.RunID)
}

func TestCompute_WeightKeys(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err := g.AddEdge("a", "b", 10, core.WithEdgeAttr("cost", 2))
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 10)
	require.NoError(t, err)

	tests := []struct {
		name string
		opt  apsp.Option
		want float64 // a → c
	}{
		{"default weight", apsp.WithWeightKey(core.WeightAttr), 20},
		{"attribute with default 1", apsp.WithWeightKey("cost"), 3},
		{"unweighted", apsp.WithUnweighted(), 2},
		{"empty key", apsp.WithWeightKey(""), 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := apsp.AllPairs(context.Background(), g, tc.opt)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got["a"]["c"])
		})
	}

	// Unweighted graphs ignore the weight key and count hops.
	hops := core.NewGraph()
	_, err = hops.AddEdge("a", "b", 0)
	require.NoError(t, err)
	got, err := apsp.AllPairs(context.Background(), hops)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got["b"]["a"])
}

func TestCompute_InvalidWeight(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", math.NaN())
	require.NoError(t, err)
	_, err = g.AddEdge("b", "c", 1)
	require.NoError(t, err)

	_, err = apsp.Compute(context.Background(), g)
	require.ErrorIs(t, err, apsp.ErrInvalidWeight)
}

func TestCompute_DirectionOverrides(t *testing.T) {
	t.Parallel()

	und := core.NewGraph(core.WithWeighted())
	_, err := und.AddEdge("a", "b", 1)
	require.NoError(t, err)
	got, err := apsp.AllPairs(context.Background(), und, apsp.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, inf, got["b"]["a"], "forced directed")

	dir := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	_, err = dir.AddEdge("a", "b", 1)
	require.NoError(t, err)
	got, err = apsp.AllPairs(context.Background(), dir, apsp.WithUndirected())
	require.NoError(t, err)
	assert.Equal(t, 1.0, got["b"]["a"], "forced undirected")

	mixed := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithMixedEdges())
	_, err = mixed.AddEdge("a", "b", 1, core.WithEdgeDirected(false))
	require.NoError(t, err)
	_, err = mixed.AddEdge("b", "c", 1)
	require.NoError(t, err)
	got, err = apsp.AllPairs(context.Background(), mixed)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got["b"]["a"], "undirected edge in mixed graph")
	assert.Equal(t, inf, got["c"]["b"])
}

func TestCompute_CancelledBeforeStart(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := apsp.Compute(ctx, randomGraph(t, 5, 16, 0.2, true, false), apsp.WithWorkers(2))
	require.ErrorIs(t, err, apsp.ErrAborted)
	require.ErrorIs(t, err, context.Canceled)
}

func TestResult_MapMatchesMatrix(t *testing.T) {
	t.Parallel()

	g := randomGraph(t, 21, 12, 0.3, true, false)
	res, err := apsp.Compute(context.Background(), g, apsp.WithWorkers(4))
	require.NoError(t, err)

	want := make(map[string]map[string]float64)
	for i, from := range res.Nodes.IDs() {
		want[from] = make(map[string]float64)
		for j, to := range res.Nodes.IDs() {
			want[from][to], _ = res.Distances.At(i, j)
		}
	}
	if diff := cmp.Diff(want, res.Map()); diff != "" {
		t.Fatalf("Map() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, want, apsp.Materialize(res.Distances, res.Nodes, 1))
	assert.Len(t, res.Map(), 12)
	assert.Equal(t, nodeID(0), res.Nodes.ID(0))
}
