// SPDX-License-Identifier: MIT
// Package pca_test contains shared fixtures.
//
// Purpose:
//   - Deterministic training sets with a known intrinsic rank.
//   - Small property checks reused across fit, transform and membership tests.

package pca_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// orthoTol bounds VᵀV - I for every built-in provider.
const orthoTol = 1e-9

// mustDense builds an r×c matrix from row-major values or fails the test.
func mustDense(t testing.TB, r, c int, vals ...float64) *mat.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "mustDense: %dx%d needs %d values", r, c, r*c)

	return mat.NewDense(r, c, vals)
}

// row wraps vals as a 1×len(vals) matrix.
func row(vals ...float64) *mat.Dense { return mat.NewDense(1, len(vals), vals) }

// lowRank returns n samples of dimension d lying on a rank-r affine
// subspace: latent Gaussian coordinates (n×r) times a random mixing matrix
// (r×d), shifted by a non-zero offset per column.
func lowRank(t testing.TB, n, d, r int, seed int64) *mat.Dense {
	t.Helper()
	require.LessOrEqual(t, r, d)
	rng := rand.New(rand.NewSource(seed))

	latent := mat.NewDense(n, r, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < r; j++ {
			latent.Set(i, j, rng.NormFloat64()*float64(r-j+1))
		}
	}
	mix := mat.NewDense(r, d, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < d; j++ {
			mix.Set(i, j, rng.NormFloat64())
		}
	}

	var out mat.Dense
	out.Mul(latent, mix)
	out.Apply(func(_, j int, v float64) float64 { return v + float64(10*j-7) }, &out)

	return &out
}

// requireOrthonormalColumns asserts VᵀV ≈ I.
func requireOrthonormalColumns(t testing.TB, v mat.Matrix) {
	t.Helper()
	_, c := v.Dims()
	var vtv mat.Dense
	vtv.Mul(v.T(), v)
	id := mat.NewDiagDense(c, nil)
	for i := 0; i < c; i++ {
		id.SetDiag(i, 1)
	}
	require.True(t, mat.EqualApprox(&vtv, id, orthoTol), "VᵀV != I:\n%v", mat.Formatted(&vtv))
}

// columnVariance returns Σ x² / n for column j (the column is assumed centered).
// Dividing by n matches the default Population normalization of the
// providers, under which whitened columns have exactly unit variance.
func columnVariance(m mat.Matrix, j int) float64 {
	n, _ := m.Dims()
	var s float64
	for i := 0; i < n; i++ {
		v := m.At(i, j)
		s += v * v
	}

	return s / float64(n)
}
