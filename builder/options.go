// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
	"strconv"
)

// DefaultEdgeWeight is used on weighted graphs when no WeightFn is set.
const DefaultEdgeWeight float64 = 1

// IDFn maps a vertex index to its ID.
type IDFn func(idx int) string

// WeightFn draws an edge weight. rng is nil for deterministic constructors
// run without a seed.
type WeightFn func(rng *rand.Rand) float64

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn, weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed installs a new RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the weight generator for weighted graphs. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// DefaultIDFn renders indices as decimal strings: "0", "1", ...
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// PaddedIDFn returns an ID scheme "<prefix><idx>" zero-padded to width so
// lexicographic order equals index order. Panics when width < 1.
func PaddedIDFn(prefix string, width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("PaddedIDFn: width must be ≥ 1, got %d", width))
	}

	return func(idx int) string { return fmt.Sprintf("%s%0*d", prefix, width, idx) }
}

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 { return DefaultEdgeWeight }

// UniformWeightFn draws from [lo, hi) with the configured RNG, falling back
// to lo without one. Panics unless lo ≤ hi.
func UniformWeightFn(lo, hi float64) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntWeightFn draws integers from [lo, hi] with the configured RNG, falling
// back to lo without one. Integer weights keep sums exact. Panics unless
// lo ≤ hi.
func IntWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("IntWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}
