// SPDX-License-Identifier: MIT

// Package apsp: functional configuration for Compute, AllPairs and Closeness.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) and ResolveWorkers.
//
// Notes:
//   - Worker counts follow job-count semantics: 0 is invalid, a negative n means
//     "all CPUs but |n|-1" (NumCPU+1+n, at least 1), unset means GOMAXPROCS.
//   - The worker count doubles as the parallelism target handed to
//     SelectBlockingFactor unless WithBlockingFactor pins the tile edge.
//   - Directedness defaults to the graph's own flag; WithDirected/WithUndirected
//     override it for a single computation.
package apsp

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/tiledapsp/core"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultBlockingFactor 0 means "select automatically from n and workers".
	DefaultBlockingFactor = 0

	// DefaultWeightKey resolves to core.Edge.Weight on weighted graphs.
	DefaultWeightKey = core.WeightAttr

	// DefaultWFImproved scales closeness by the reachable fraction of the graph.
	DefaultWFImproved = true
)

// ---------- Internal panic messages ----------

const (
	panicWorkersZero     = "apsp: WithWorkers: n must not be zero"
	panicBlockingFactor  = "apsp: WithBlockingFactor: factor must be >= 1"
	panicNilLogger       = "apsp: WithLogger: logger must not be nil"
	panicEmptyNodeListID = "apsp: WithNodeList: ids must be non-empty strings"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); data-dependent failures surface as errors.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	workers    int  // raw job count; meaningful only when workersSet
	workersSet bool // false ⇒ GOMAXPROCS

	blockingFactor int    // 0 ⇒ auto
	weightKey      string // "" ⇒ unit weights

	nodeList []string // nil ⇒ graph order (lexicographic)
	directed *bool    // nil ⇒ graph default

	logger     *slog.Logger
	wfImproved bool
}

// WithWorkers sets the job count used for every parallel stage.
// Negative values count back from the CPU total (-1 ⇒ all CPUs).
// Panics when n == 0.
func WithWorkers(n int) Option {
	if n == 0 {
		panic(panicWorkersZero)
	}

	return func(o *options) {
		o.workers = n
		o.workersSet = true
	}
}

// WithBlockingFactor pins the tile edge length instead of selecting it.
// Values larger than n are clamped to n at run time. Panics when factor < 1.
func WithBlockingFactor(factor int) Option {
	if factor < 1 {
		panic(panicBlockingFactor)
	}

	return func(o *options) { o.blockingFactor = factor }
}

// WithWeightKey selects the edge attribute used as length. core.WeightAttr
// reads Edge.Weight on weighted graphs; any other key reads Edge.Attrs. Edges
// lacking the attribute weigh 1. An empty key is equivalent to WithUnweighted.
func WithWeightKey(key string) Option {
	return func(o *options) { o.weightKey = key }
}

// WithUnweighted treats every edge as length 1 (hop counts).
func WithUnweighted() Option {
	return func(o *options) { o.weightKey = "" }
}

// WithNodeList fixes the row/column order of the distance matrix. The list must
// be a duplicate-free permutation of the graph's vertices; violations surface
// as ErrBadNodeList from the computation. Panics on empty IDs.
func WithNodeList(ids []string) Option {
	for _, id := range ids {
		if id == "" {
			panic(panicEmptyNodeListID)
		}
	}
	cp := append([]string(nil), ids...)

	return func(o *options) { o.nodeList = cp }
}

// WithDirected forces directed semantics regardless of the graph default.
func WithDirected() Option {
	return func(o *options) {
		v := true
		o.directed = &v
	}
}

// WithUndirected forces undirected semantics (every edge relaxes both ways).
func WithUndirected() Option {
	return func(o *options) {
		v := false
		o.directed = &v
	}
}

// WithLogger routes debug logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithWFImproved toggles the Wasserman–Faust scaling in closeness centrality.
func WithWFImproved(on bool) Option {
	return func(o *options) { o.wfImproved = on }
}

// gatherOptions applies opts over the defaults, left to right.
func gatherOptions(opts ...Option) options {
	o := options{
		blockingFactor: DefaultBlockingFactor,
		weightKey:      DefaultWeightKey,
		wfImproved:     DefaultWFImproved,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// resolveWorkers maps the gathered job count to a concrete worker total.
func (o options) resolveWorkers() (int, error) {
	if !o.workersSet {
		return runtime.GOMAXPROCS(0), nil
	}

	return ResolveWorkers(o.workers)
}

// ResolveWorkers converts a job count into a concrete number of workers:
//
//	n > 0  ⇒ n
//	n < 0  ⇒ max(1, NumCPU + 1 + n)   (-1 ⇒ all CPUs)
//	n == 0 ⇒ ErrInvalidWorkers
func ResolveWorkers(n int) (int, error) {
	switch {
	case n > 0:
		return n, nil
	case n < 0:
		return max(1, runtime.NumCPU()+1+n), nil
	default:
		return 0, fmt.Errorf("ResolveWorkers(%d): %w", n, ErrInvalidWorkers)
	}
}
