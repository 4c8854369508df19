// SPDX-License-Identifier: MIT
// Package: solver
//
// Purpose:
//   - One canonical place for the input checks every engine runs before it
//     allocates anything: presence, shape agreement, finiteness, binary response.
//   - Return plain sentinels; engines wrap them with their own operation tag.

package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ValidateShape checks that X is present and non-empty and that y has one entry per row of X.
// It returns the observation count n and the regressor count p.
//
// Errors: ErrEmptyInput, ErrNotSameObservations.
// Complexity: O(1).
func ValidateShape(y []float64, x mat.Matrix) (n, p int, err error) {
	if x == nil {
		return 0, 0, ErrEmptyInput
	}
	n, p = x.Dims()
	if n == 0 || p == 0 || len(y) == 0 {
		return 0, 0, ErrEmptyInput
	}
	if len(y) != n {
		return 0, 0, ErrNotSameObservations
	}
	return n, p, nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in y or X.
//
// Errors: ErrNonFinite.
// Complexity: O(n·p).
func ValidateFinite(y []float64, x mat.Matrix) error {
	for _, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNonFinite
		}
	}
	r, c := x.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := x.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNonFinite
			}
		}
	}
	return nil
}

// ValidateBinary requires the distinct values of y to be exactly {0, 1}.
// A single-class response is rejected as well.
//
// Errors: ErrNonBinary.
// Complexity: O(n).
func ValidateBinary(y []float64) error {
	var zeros, ones int
	for _, v := range y {
		switch v {
		case 0:
			zeros++
		case 1:
			ones++
		default:
			return ErrNonBinary
		}
	}
	if zeros == 0 || ones == 0 {
		return ErrNonBinary
	}
	return nil
}

// ValidateClusters checks a clustered SE request against n observations and
// returns the number of clusters G.
//
// Errors: ErrClusterLength, ErrTooFewClusters.
func ValidateClusters(tags []int, n int) (int, error) {
	if len(tags) != n {
		return 0, ErrClusterLength
	}
	for _, t := range tags {
		if t < 0 {
			return 0, ErrClusterLength
		}
	}
	g := CountClusters(tags)
	if g < 2 {
		return 0, ErrTooFewClusters
	}
	return g, nil
}

// CloneInputs returns owned copies of y and X so that an engine never aliases caller memory.
func CloneInputs(y []float64, x mat.Matrix) ([]float64, *mat.Dense) {
	yc := make([]float64, len(y))
	copy(yc, y)
	return yc, mat.DenseCopyOf(x)
}

// CopyFloats returns a copy of v, or nil for nil input.
func CopyFloats(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}
