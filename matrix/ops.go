// SPDX-License-Identifier: MIT
// Package: matrix
//
// Small deterministic kernels. *Dense operands take a flat-slice fast path;
// other Matrix implementations fall back to At with full error propagation.

package matrix

import "fmt"

const (
	opMatVec  = "MatVec"
	opRowSums = "RowSums"
)

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = 0
			base = i * d.c
			for j = 0; j < d.c; j++ {
				if x[j] != 0 {
					acc += d.data[base+j] * x[j]
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// RowSums returns vector r where r[i] = sum_j m[i,j].
// Implementation: MatVec(m, ones(cols)).
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}
	y, err := MatVec(m, ones)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return y, nil
}
