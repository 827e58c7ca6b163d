// SPDX-License-Identifier: MIT
// Package evd_test contains shared fixtures and property checks.

package evd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/evd"
)

// providers lists every built-in provider under a stable name.
func providers(opts ...evd.Option) map[string]evd.Provider {
	return map[string]evd.Provider{
		"svd":      evd.NewSVD(opts...),
		"eigensym": evd.NewEigenSym(opts...),
		"jacobi":   evd.NewJacobi(opts...),
	}
}

// centeredRand returns an n×d matrix of deterministic pseudo-random values
// with every column shifted to zero mean.
func centeredRand(t testing.TB, n, d int, seed int64) *mat.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mat.NewDense(n, d, nil)
	for j := 0; j < d; j++ {
		var sum float64
		for i := 0; i < n; i++ {
			v := rng.NormFloat64() * float64(j+1)
			m.Set(i, j, v)
			sum += v
		}
		mean := sum / float64(n)
		for i := 0; i < n; i++ {
			m.Set(i, j, m.At(i, j)-mean)
		}
	}

	return m
}

// requireOrthonormal asserts VᵀV ≈ I within tol.
func requireOrthonormal(t testing.TB, v mat.Matrix, tol float64) {
	t.Helper()
	_, c := v.Dims()
	var vtv mat.Dense
	vtv.Mul(v.T(), v)
	require.True(t, mat.EqualApprox(&vtv, identity(c), tol), "VᵀV != I:\n%v", mat.Formatted(&vtv))
}

// requireEigenEquation asserts C·V ≈ V·diag(values) within tol.
func requireEigenEquation(t testing.TB, cov mat.Matrix, dec evd.Decomposition, tol float64) {
	t.Helper()
	var lhs, rhs mat.Dense
	lhs.Mul(cov, dec.V)
	rhs.Mul(dec.V, dec.D())
	require.True(t, mat.EqualApprox(&lhs, &rhs, tol), "C·V != V·D")
}

// requireDescending asserts values are finite, non-negative and non-increasing.
func requireDescending(t testing.TB, values []float64) {
	t.Helper()
	for i, v := range values {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "value[%d]=%g", i, v)
		require.GreaterOrEqual(t, v, 0.0)
		if i > 0 {
			require.LessOrEqual(t, v, values[i-1], "value[%d]", i)
		}
	}
}

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}
