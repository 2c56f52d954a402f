// SPDX-License-Identifier: MIT

package apsp

import (
	"math"

	"github.com/katalvlaran/tiledapsp/matrix"
)

// relax applies the min-plus update
//
//	A[i][j] = min(A[i][j], A[i][k] + A[k][j])
//
// for every kk in k, ii in rows, jj in cols, with kk outermost. Pairs where
// either leg is +Inf are skipped; only strict improvements are written.
//
// The kernel is single-threaded and allocation-free. Blocks are trusted: the
// schedule only emits ranges produced by matrix.Partition.
func relax(d *matrix.Dense, k, rows, cols matrix.Block) {
	data, n := d.Raw()

	var (
		kk, ii, jj   int
		baseK, baseI int
		ik, kj, cand float64
	)
	for kk = k.Start; kk < k.End; kk++ {
		baseK = kk * n
		for ii = rows.Start; ii < rows.End; ii++ {
			ik = data[ii*n+kk]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI = ii * n
			for jj = cols.Start; jj < cols.End; jj++ {
				kj = data[baseK+jj]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+jj] {
					data[baseI+jj] = cand
				}
			}
		}
	}
}
