// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Describe contiguous index ranges (Block) used to tile an n×n matrix.
//   - Partition [0, n) into equal-width blocks; the last block absorbs the remainder.
//
// Contract:
//   - Blocks are half-open [Start, End) with 0 <= Start < End <= n.
//   - Partition covers every index exactly once and in ascending order.

package matrix

import "fmt"

const opPartition = "Partition"

// Block is a half-open index range [Start, End) over one matrix dimension.
// A Block never owns data; it only names a slice of rows or columns.
type Block struct {
	Start int // first index (inclusive)
	End   int // last index (exclusive)
}

// Len returns the number of indices covered by b.
func (b Block) Len() int { return b.End - b.Start }

// Contains reports whether idx lies inside b.
func (b Block) Contains(idx int) bool { return idx >= b.Start && idx < b.End }

// Overlaps reports whether b and o share at least one index.
func (b Block) Overlaps(o Block) bool { return b.Start < o.End && o.Start < b.End }

// Validate checks that b is non-empty and fits inside [0, n).
// Returns ErrBadBlock otherwise.
// Complexity: O(1).
func (b Block) Validate(n int) error {
	if b.Start < 0 || b.End > n || b.Start >= b.End {
		return fmt.Errorf("Block[%d,%d) of %d: %w", b.Start, b.End, n, ErrBadBlock)
	}

	return nil
}

// String renders b as "[start,end)".
func (b Block) String() string { return fmt.Sprintf("[%d,%d)", b.Start, b.End) }

// Partition splits [0, n) into n/factor primary blocks of width factor.
// When factor does not divide n the final block is extended to n, so it is
// wider than the others (irregular final block).
//
// Behavior highlights:
//   - factor > n is clamped to n (one block covering everything).
//   - factor == 1 yields n blocks of width 1.
//
// Errors:
//   - ErrInvalidDimensions if n <= 0.
//   - ErrBadBlockingFactor if factor < 1.
//
// Complexity: O(n/factor) time and space.
func Partition(n, factor int) ([]Block, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opPartition, n, factor, ErrInvalidDimensions)
	}
	if factor < 1 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opPartition, n, factor, ErrBadBlockingFactor)
	}
	if factor > n {
		factor = n
	}

	count := n / factor
	blocks := make([]Block, count)
	var p int
	for p = 0; p < count; p++ {
		blocks[p] = Block{Start: p * factor, End: (p + 1) * factor}
	}
	// Remainder goes to the last block; the range always ends at n.
	blocks[count-1].End = n

	return blocks, nil
}
