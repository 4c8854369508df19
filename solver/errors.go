// SPDX-License-Identifier: MIT
// Package solver: sentinel error set shared by every estimation engine.
// Engines return these sentinels (optionally wrapped with an operation tag via
// Errorf) and callers match them with errors.Is. No engine panics on
// user-triggered conditions.

package solver

import (
	"errors"
	"fmt"
)

// ERROR GROUPS
// ------------
// input shape -> numerical -> degenerate data -> state.
// Every message is prefixed with "solver: ..." so it greps cleanly in logs.

var (
	// ErrEmptyInput is returned when y or X carries no observations or no regressors.
	ErrEmptyInput = errors.New("solver: empty input")

	// ErrNotSameObservations is returned when len(y) differs from the number of rows of X.
	ErrNotSameObservations = errors.New("solver: response and design matrix have a different number of observations")

	// ErrNonFinite is returned when y or X contains NaN or ±Inf.
	ErrNonFinite = errors.New("solver: NaN or Inf in input")

	// ErrNonBinary is returned when a binary response does not consist of exactly {0, 1}.
	ErrNonBinary = errors.New("solver: response is not binary {0,1}")

	// ErrClusterLength is returned when a cluster tag array does not have one tag per observation.
	ErrClusterLength = errors.New("solver: cluster tags do not match the number of observations")

	// ErrNotQRDecomposable is returned when the design matrix cannot be QR-factorized
	// into an invertible R (fewer rows than columns, or lost column rank).
	ErrNotQRDecomposable = errors.New("solver: matrix is not QR-decomposable")

	// ErrNotInvertible is returned when R, RᵀR or an information matrix is singular.
	ErrNotInvertible = errors.New("solver: matrix is not invertible")

	// ErrDegreesOfFreedom is returned when n − p − 1 leaves no residual degrees of freedom.
	ErrDegreesOfFreedom = errors.New("solver: not enough observations for the number of regressors")

	// ErrOptimizer wraps a failure reported by the numerical optimizer.
	ErrOptimizer = errors.New("solver: optimizer failed")

	// ErrNotConverged is returned when the optimizer exhausts its iteration budget
	// without meeting the gradient tolerance.
	ErrNotConverged = errors.New("solver: optimizer did not converge")

	// ErrTooFewClusters is returned when clustered variance is requested with fewer than two clusters.
	ErrTooFewClusters = errors.New("solver: clustered variance needs at least two clusters")

	// ErrUnknownSEType is returned for an SE kind outside the declared set.
	ErrUnknownSEType = errors.New("solver: unknown standard error type")

	// ErrNotSolved is returned by every Results accessor whose field is not yet populated.
	ErrNotSolved = errors.New("solver: not solved")

	// ErrAlreadySolved is returned when Solve is invoked on a value that was already
	// consumed by a previous Solve or is itself a solved value.
	ErrAlreadySolved = errors.New("solver: already solved")
)

// Errorf wraps err with an operation tag, keeping the sentinel reachable by errors.Is.
// Only call it with a non-nil err.
func Errorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// Errorfd wraps err with an operation tag and a detail string, e.g.
// "OLS.New: R matrix from QR-decomposed X: solver: matrix is not invertible".
func Errorfd(op, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", op, detail, err)
}
