// SPDX-License-Identifier: MIT

// Package pca fits Principal Component Analysis models and applies them.
//
// Overview:
//
//   - Fit takes a training matrix (n×d, one sample per row), optionally
//     centers it by its column means, obtains the eigen-decomposition of its
//     covariance from an evd.Provider, and keeps the leading directions whose
//     standard deviation exceeds sd(0)·tol.
//   - The resulting *Model is immutable. It maps new data into the retained
//     subspace (Transform with Rotation or Whitening) and tests whether a
//     point lies in that subspace (BelongsToGeneratedSubspace).
//
// Split rule:
//
//   - sd(i) = √λ_i with λ sorted non-increasing; base = sd(0)·tol.
//   - k is the first index with sd(i) ≤ base (d when none).
//   - A point belongs when every residual along a discarded direction is
//     within MembershipMargin·base.
//
// Transforms:
//
//   - Rotation:  (x - μ)·V_sig, output variances equal the retained eigenvalues.
//   - Whitening: (x - μ)·V_sig·diag(1/√λ), unit output variances under the
//     covariance normalization of the provider (population by default).
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrNilData, ErrNoSamples, ErrNaNInf, ErrDimensionMismatch,
//     ErrOutOfRange, ErrBadTolerance: invalid arguments.
//   - ErrDegenerateEigenvalue: a retained eigenvalue cannot be whitened.
//   - ErrUnknownTransform: a TransformKind outside the exported set.
//   - evd errors are wrapped unchanged.
//
// Example:
//
//	data := mat.NewDense(4, 2, []float64{0, 0, 2, 0, 0, 0, 2, 0})
//	model, err := pca.Fit(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ok, _ := model.BelongsToGeneratedSubspace(mat.NewDense(1, 2, []float64{1, 0}))
//	fmt.Println(model.OutputDims(), ok) // 1 true
package pca
