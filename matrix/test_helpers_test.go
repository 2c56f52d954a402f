// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels and blocks.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tiledapsp/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At/Set fallback path in code under test.
type hide struct{ matrix.Matrix }

// MustDistance allocates an n×n distance matrix or fails the test.
func MustDistance(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDistance(n)
	if err != nil {
		t.Fatalf("NewDistance(%d): %v", n, err)
	}

	return d
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// CompareExact asserts strict equality between matrix and 2D literal.
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if m.Rows() != len(want) {
		t.Fatalf("rows=%d; want %d", m.Rows(), len(want))
	}
	var i, j int
	for i = range want {
		if m.Cols() != len(want[i]) {
			t.Fatalf("cols=%d; want %d", m.Cols(), len(want[i]))
		}
		for j = range want[i] {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, got, want[i][j])
			}
		}
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// clrs builds the classic CLRS 5×5 directed graph with negative edges and no
// negative cycle.
func clrs(t *testing.T) *matrix.Dense {
	t.Helper()
	A := MustDistance(t, 5)
	MustSet(t, A, 0, 1, 3)
	MustSet(t, A, 0, 2, 8)
	MustSet(t, A, 0, 4, -4)
	MustSet(t, A, 1, 3, 1)
	MustSet(t, A, 1, 4, 7)
	MustSet(t, A, 2, 1, 4)
	MustSet(t, A, 3, 0, 2)
	MustSet(t, A, 3, 2, -5)
	MustSet(t, A, 4, 3, 6)

	return A
}

// clrsWant is the closed CLRS distance matrix.
var clrsWant = [][]float64{
	{0, 1, -3, 2, -4},
	{3, 0, -4, 1, -1},
	{7, 4, 0, 5, 3},
	{2, -1, -5, 0, -2},
	{8, 5, 1, 6, 0},
}
