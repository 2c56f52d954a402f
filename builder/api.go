// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/tiledapsp/core"
)

// Constructor adds one topology to g using cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph from gopts and applies every constructor in
// order with the configuration resolved from bopts.
//
// Errors: ErrConstructFailed for a nil constructor; constructor errors are
// wrapped with "BuildGraph".
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices inserts IDs for indices 0..n-1.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge connects indices u and v with a weight drawn from cfg when g is weighted.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	var w float64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	from, to := cfg.idFn(u), cfg.idFn(v)
	if _, err := g.AddEdge(from, to, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, from, to, w, err)
	}

	return nil
}
