// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiledapsp/core"
)

func TestGraph_AddRemoveVertex(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("b"))
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"), "AddVertex is idempotent")

	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.Equal(t, 2, g.VertexCount())

	require.ErrorIs(t, g.RemoveVertex("zzz"), core.ErrVertexNotFound)
	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.RemoveVertex("a"))
	assert.Equal(t, []string{"b"}, g.Vertices())
}

func TestGraph_AddEdgeConstraints(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	_, err := g.AddEdge("", "x", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("a", "b", 2)
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("a", "a", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("a", "b", 0, core.WithEdgeDirected(true))
	require.ErrorIs(t, err, core.ErrMixedEdgesNotAllowed)
	_, err = g.AddEdge("a", "b", 0, core.WithEdgeAttr("", 1))
	require.ErrorIs(t, err, core.ErrEmptyAttrKey)
	assert.Zero(t, g.VertexCount(), "rejected edges must not create vertices")

	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("b", "a", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected edges are mirrored")
}

func TestGraph_DirectionAndLookup(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	eid, err := g.AddEdge("u", "v", 2.5, core.WithEdgeAttr("cost", 7))
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	assert.True(t, g.HasEdge("u", "v"))
	assert.False(t, g.HasEdge("v", "u"))

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	assert.Equal(t, 2.5, e.Weight)
	assert.True(t, e.Directed)
	cost, ok := e.Attr("cost")
	assert.True(t, ok)
	assert.Equal(t, 7.0, cost)
	_, ok = e.Attr("missing")
	assert.False(t, ok)

	_, err = g.GetEdge("e99")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_MixedEdges(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true), core.WithMixedEdges())
	_, err := g.AddEdge("a", "b", 0, core.WithEdgeDirected(false))
	require.NoError(t, err)
	assert.True(t, g.HasEdge("b", "a"), "undirected override is mirrored")
	assert.True(t, g.MixedEdges())
}

func TestGraph_RemoveEdgeAndVertexCascade(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	e1, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("b", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("c", "d", 0)
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())

	require.NoError(t, g.RemoveEdge(e1))
	require.ErrorIs(t, g.RemoveEdge(e1), core.ErrEdgeNotFound)
	assert.True(t, g.HasEdge("b", "a"), "one parallel edge remains")

	require.NoError(t, g.RemoveVertex("b"))
	assert.Equal(t, 1, g.EdgeCount())
	assert.False(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("d", "c"))
}

// Edges() must follow insertion order even past nine edges ("e10" after "e9").
func TestGraph_EdgesInInsertionOrder(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true), core.WithMultiEdges())
	ids := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		id, err := g.AddEdge("x", "y", 0)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	got := make([]string, 0, 12)
	for _, e := range g.Edges() {
		got = append(got, e.ID)
	}
	assert.Equal(t, ids, got)
}

func TestGraph_Flags(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	assert.False(t, g.Directed())
	assert.False(t, g.Weighted())
	assert.False(t, g.Looped())
	assert.False(t, g.Multigraph())

	g = core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	assert.True(t, g.Directed())
	assert.True(t, g.Weighted())
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())
}
