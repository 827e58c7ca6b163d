// SPDX-License-Identifier: MIT
// Package evd: sentinel error set.
// All providers return these sentinels (optionally wrapped with an operation
// tag via evdErrorf); callers match them with errors.Is.

package evd

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil mat.Matrix was passed to a provider.
	ErrNilMatrix = errors.New("evd: nil matrix")

	// ErrEmptyMatrix indicates a matrix without rows or without columns.
	ErrEmptyMatrix = errors.New("evd: empty matrix")

	// ErrFactorizeFailed is returned when a gonum factorization reports failure.
	ErrFactorizeFailed = errors.New("evd: factorization failed")

	// ErrEigenFailed indicates that the Jacobi sweep did not converge
	// under the configured tolerance/sweep budget.
	ErrEigenFailed = errors.New("evd: eigen decomposition did not converge")

	// ErrBadDecomposition marks a Decomposition that violates the (V, D)
	// contract: wrong shape, unsorted, negative or non-finite eigenvalues.
	ErrBadDecomposition = errors.New("evd: decomposition violates contract")
)

// Operation tags for error wrapping (no magic strings at call sites).
const (
	opSVD        = "SVD"
	opEigenSym   = "EigenSym"
	opJacobi     = "Jacobi"
	opCovariance = "Covariance"
	opValidate   = "Validate"
)

// evdErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func evdErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
