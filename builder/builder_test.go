// SPDX-License-Identifier: MIT

package builder_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiledapsp/apsp"
	"github.com/katalvlaran/tiledapsp/builder"
	"github.com/katalvlaran/tiledapsp/core"
)

var (
	directedWeighted = []core.GraphOption{core.WithDirected(true), core.WithWeighted()}
	undirected       = []core.GraphOption{core.WithDirected(false)}
)

func TestTopologies_Counts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		gopts     []core.GraphOption
		cons      builder.Constructor
		wantNodes int
		wantEdges int
	}{
		{"path", undirected, builder.Path(5), 5, 4},
		{"cycle", directedWeighted, builder.Cycle(6), 6, 6},
		{"complete directed", directedWeighted, builder.Complete(4), 4, 12},
		{"complete undirected", undirected, builder.Complete(4), 4, 6},
		{"grid", undirected, builder.Grid(3, 4), 12, 17},
		{"star", undirected, builder.Star(5), 5, 4},
		{"random p=1", directedWeighted, builder.RandomSparse(5, 1), 5, 20},
		{"random p=0", undirected, builder.RandomSparse(5, 0), 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNodes, g.VertexCount())
			assert.Equal(t, tc.wantEdges, g.EdgeCount())
		})
	}
}

func TestTopologies_Errors(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		cons builder.Constructor
		want error
	}{
		"path":        {builder.Path(1), builder.ErrTooFewVertices},
		"cycle":       {builder.Cycle(2), builder.ErrTooFewVertices},
		"complete":    {builder.Complete(0), builder.ErrTooFewVertices},
		"grid":        {builder.Grid(0, 3), builder.ErrTooFewVertices},
		"star":        {builder.Star(1), builder.ErrTooFewVertices},
		"random n":    {builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		"random p":    {builder.RandomSparse(3, 1.5), builder.ErrInvalidProbability},
		"random rng":  {builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		"constructor": {nil, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.cons)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() *core.Graph {
		g, err := builder.BuildGraph(directedWeighted,
			[]builder.BuilderOption{builder.WithSeed(11), builder.WithWeightFn(builder.IntWeightFn(1, 9))},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g
	}
	a, b := build(), build()

	type arc struct {
		From, To string
		W        float64
	}
	flatten := func(g *core.Graph) []arc {
		out := make([]arc, 0, g.EdgeCount())
		for _, e := range g.Edges() {
			out = append(out, arc{e.From, e.To, e.Weight})
			assert.True(t, e.Weight >= 1 && e.Weight <= 9)
		}
		return out
	}
	if diff := cmp.Diff(flatten(a), flatten(b)); diff != "" {
		t.Errorf("same seed, different graphs (-a +b):\n%s", diff)
	}
	assert.NotZero(t, a.EdgeCount())
}

func TestGrid_ManhattanDistances(t *testing.T) {
	t.Parallel()

	const rows, cols = 4, 6
	g, err := builder.BuildGraph(undirected,
		[]builder.BuilderOption{builder.WithIDScheme(builder.PaddedIDFn("n", 2))},
		builder.Grid(rows, cols))
	require.NoError(t, err)

	res, err := apsp.Compute(context.Background(), g, apsp.WithWorkers(3))
	require.NoError(t, err)

	id := builder.PaddedIDFn("n", 2)
	for a := 0; a < rows*cols; a++ {
		for b := 0; b < rows*cols; b++ {
			d, err := res.Distance(id(a), id(b))
			require.NoError(t, err)
			want := abs(a/cols-b/cols) + abs(a%cols-b%cols)
			assert.Equal(t, float64(want), d, "%d→%d", a, b)
		}
	}
}

func TestCycle_DirectedDistances(t *testing.T) {
	t.Parallel()

	const n = 9
	g, err := builder.BuildGraph(directedWeighted, nil, builder.Cycle(n))
	require.NoError(t, err)
	got, err := apsp.AllPairs(context.Background(), g, apsp.WithBlockingFactor(2))
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, float64((j-i+n)%n), got[builder.DefaultIDFn(i)][builder.DefaultIDFn(j)])
		}
	}
}

func TestWeightFns(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(2, 3)(rng)
		assert.True(t, w >= 2 && w < 3)
	}
	assert.Equal(t, 2.0, builder.UniformWeightFn(2, 3)(nil))
	assert.Equal(t, 4.0, builder.IntWeightFn(4, 4)(rng))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, "x007", builder.PaddedIDFn("x", 3)(7))

	assert.Panics(t, func() { builder.UniformWeightFn(3, 2) })
	assert.Panics(t, func() { builder.IntWeightFn(3, 2) })
	assert.Panics(t, func() { builder.PaddedIDFn("x", 0) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
