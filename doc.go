// SPDX-License-Identifier: MIT

// Package lvpca is a small Principal Component Analysis toolkit built on
// gonum matrices.
//
// What is inside:
//
//	evd/          — eigen-decomposition providers for covariance matrices:
//	                SVD (default), gonum EigenSym, deterministic Jacobi
//	pca/          — Fit, the threshold splitter, rotation/whitening transforms
//	                and the subspace-membership test
//	cmd/pcatool/  — CLI: fit / transform / check on CSV files
//	examples/     — a runnable anomaly-detection scenario
//
// Quick start:
//
//	model, err := pca.Fit(data) // data: n×d *mat.Dense, one sample per row
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y, _ := model.Transform(x, pca.Whitening)
//	ok, _ := model.BelongsToGeneratedSubspace(point)
//
// Models are immutable once fitted and safe for concurrent use.
package lvpca
