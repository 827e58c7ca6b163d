// SPDX-License-Identifier: MIT

// Package evd supplies eigen-decompositions of covariance matrices for PCA.
//
// Overview:
//
//   - A Provider takes centered data X (n×d) and returns a Decomposition:
//     an orthonormal d×d eigenvector matrix V and the eigenvalues of the
//     covariance of X, sorted non-increasing and aligned with V's columns.
//   - Three interchangeable providers are built in:
//     NewSVD (default of pca.Fit; singular values of X, never forms XᵀX),
//     NewEigenSym (explicit covariance + gonum symmetric eigensolver),
//     NewJacobi (explicit covariance + deterministic Jacobi rotations).
//   - ProviderFunc lets any function act as a Provider.
//
// Round-off:
//
//   - EigenSym and Jacobi form XᵀX explicitly, so a null direction comes
//     back near ε·λ0. Values at or below d·ε·max(λ) are reported as 0.
//
// Normalization:
//
//   - Population (default): covariance = XᵀX / n.
//   - Sample: covariance = XᵀX / (n-1), falling back to n when n == 1.
//
// Errors (sentinel, match with errors.Is):
//
//   - ErrNilMatrix, ErrEmptyMatrix: unusable input.
//   - ErrFactorizeFailed: gonum reported a failed factorization.
//   - ErrEigenFailed: Jacobi ran out of sweeps.
//   - ErrBadDecomposition: Validate rejected a provider's output.
//
// Example:
//
//	dec, err := evd.NewJacobi(evd.WithNormalization(evd.Sample)).Run(centered)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dec.Values)
package evd
