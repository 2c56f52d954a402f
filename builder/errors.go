// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewVertices reports a size parameter below the topology minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability reports an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource reports a stochastic constructor run without an RNG.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed reports a nil constructor or nil target graph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
