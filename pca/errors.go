// SPDX-License-Identifier: MIT
// Package pca: sentinel error set.
// Every failure surfaced by Fit, Transform and BelongsToGeneratedSubspace is
// one of these sentinels, optionally wrapped with an operation tag through
// pcaErrorf. Callers MUST match with errors.Is. Panics are reserved for
// nonsensical option values (programmer error).

package pca

import (
	"errors"
	"fmt"
)

// ERROR TAXONOMY
// --------------
// invalid argument:   ErrNilData, ErrNoSamples, ErrNaNInf, ErrDimensionMismatch, ErrOutOfRange,
//                     ErrBadTolerance
// internal invariant: ErrUnknownTransform (unreachable with the exported kinds)
// numeric degeneracy: ErrDegenerateEigenvalue
// Provider failures are wrapped as-is (see package evd).

var (
	// ErrNilData indicates that a nil mat.Matrix was passed in.
	ErrNilData = errors.New("pca: nil data")

	// ErrNoSamples indicates training data with zero rows.
	ErrNoSamples = errors.New("pca: data has no rows")

	// ErrNaNInf indicates a NaN or ±Inf in training data.
	ErrNaNInf = errors.New("pca: NaN or Inf in data")

	// ErrDimensionMismatch indicates a row/column count that does not match
	// the fitted model (Transform columns, membership point shape).
	ErrDimensionMismatch = errors.New("pca: dimension mismatch")

	// ErrOutOfRange indicates an eigenvalue index outside [0, OutputDims()).
	ErrOutOfRange = errors.New("pca: index out of range")

	// ErrBadTolerance indicates a split tolerance that is negative or not finite.
	ErrBadTolerance = errors.New("pca: invalid split tolerance")

	// ErrUnknownTransform signals a TransformKind outside {Rotation, Whitening}.
	// It is a programming defect, not a recoverable condition.
	ErrUnknownTransform = errors.New("pca: unknown transform kind")

	// ErrDegenerateEigenvalue indicates a retained eigenvalue that is zero,
	// below the configured minimum, or whose whitening factor 1/√λ is not finite.
	ErrDegenerateEigenvalue = errors.New("pca: degenerate retained eigenvalue")
)

// Operation tags for error wrapping.
const (
	opFit        = "Fit"
	opSplit      = "Split"
	opTransform  = "Transform"
	opBelongs    = "BelongsToGeneratedSubspace"
	opEigenvalue = "Eigenvalue"
	opCovariance = "CovarianceMatrix"
	opWhitening  = "Whitening"
)

// pcaErrorf wraps err with an operation tag, keeping errors.Is working.
// Call only with a non-nil err.
func pcaErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
