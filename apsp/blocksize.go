// SPDX-License-Identifier: MIT

package apsp

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// parallelDivisorSpan is the divisor-range length from which candidate
// evaluation is split across goroutines; shorter ranges run inline.
const parallelDivisorSpan = 1 << 16

// SelectBlockingFactor picks the tile edge length for an n×n matrix given a
// target parallelism degree.
//
// Rules:
//   - n < target ⇒ (1, false): tiling cannot beat the available parallelism.
//   - Otherwise every exact divisor d of n in [2, ⌊√n⌋] offers the member of
//     (d, n/d) closer to target (ties keep d). The overall winner minimises the
//     distance to target; ties keep the smaller candidate.
//   - No divisor in range (n behaves as prime, including n ≤ 3) ⇒ retry with
//     n-1. The caller then tiles n with the factor of n-1, so the last block
//     is wider than the rest.
//
// irregular reports exactly that case: a fallback was taken and the factor
// does not divide n. A fallback that ends at factor 1 is regular.
//
// target < 1 is treated as 1. Pure function.
// Complexity: O(√n) per attempt.
func SelectBlockingFactor(n, target int) (factor int, irregular bool) {
	if target < 1 {
		target = 1
	}
	fallback := false
	for m := n; ; m-- {
		if m < target || m <= 1 {
			return 1, false
		}
		if f, ok := closestDivisor(m, target); ok {
			return f, fallback && n%f != 0
		}
		fallback = true
	}
}

// divisorPick is the best candidate seen so far in a divisor scan.
type divisorPick struct {
	value int
	dist  int
	ok    bool
}

// offer folds candidate c into p under the closest-then-smallest rule.
func (p *divisorPick) offer(c, target int) {
	d := absInt(c - target)
	if !p.ok || d < p.dist || (d == p.dist && c < p.value) {
		*p = divisorPick{value: c, dist: d, ok: true}
	}
}

// closestDivisor scans divisors of n in [2, ⌊√n⌋]. Long ranges are split into
// per-goroutine spans whose local winners are merged after the barrier.
func closestDivisor(n, target int) (int, bool) {
	limit := isqrt(n)
	if limit < 2 {
		return 0, false
	}

	span := limit - 1
	if span < parallelDivisorSpan {
		best := scanDivisors(n, target, 2, limit)
		return best.value, best.ok
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (span + workers - 1) / workers
	locals := make([]divisorPick, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := 2 + w*chunk
		hi := min(lo+chunk-1, limit)
		if lo > hi {
			break
		}
		g.Go(func() error {
			locals[w] = scanDivisors(n, target, lo, hi)
			return nil
		})
	}
	_ = g.Wait() // scans cannot fail

	var best divisorPick
	for _, p := range locals {
		if p.ok {
			best.offer(p.value, target)
		}
	}

	return best.value, best.ok
}

// scanDivisors evaluates divisors d of n in [lo, hi].
func scanDivisors(n, target, lo, hi int) divisorPick {
	var best divisorPick
	for d := lo; d <= hi; d++ {
		if n%d != 0 {
			continue
		}
		c, q := d, n/d
		if absInt(q-target) < absInt(d-target) {
			c = q
		}
		best.offer(c, target)
	}

	return best
}

// isqrt returns ⌊√n⌋ for n >= 0.
func isqrt(n int) int {
	if n < 2 {
		return n
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}

	return x
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
