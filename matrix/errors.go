// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All functions return these sentinels (possibly wrapped with %w) and
// tests check them via errors.Is. No function panics on user-triggered errors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and grep-ability.
// Context is attached at the detection site with fmt.Errorf("Op: ...: %w", ErrX);
// callers still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or -Inf value where only finite values or the
	// +Inf "no path" sentinel are legal.
	ErrNaNInf = errors.New("matrix: NaN or -Inf encountered")

	// ErrBadBlock reports a Block that is empty, inverted or outside [0, n).
	ErrBadBlock = errors.New("matrix: invalid block range")

	// ErrBadBlockingFactor reports a blocking factor < 1.
	ErrBadBlockingFactor = errors.New("matrix: blocking factor must be >= 1")
)
