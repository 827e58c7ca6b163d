// SPDX-License-Identifier: MIT

package evd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/evd"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		dec  evd.Decomposition
		d    int
		ok   bool
	}{
		{"conforming", evd.Decomposition{V: identity(2), Values: []float64{2, 1}}, 2, true},
		{"ties allowed", evd.Decomposition{V: identity(2), Values: []float64{1, 1}}, 2, true},
		{"empty", evd.Decomposition{}, 0, true},
		{"count mismatch", evd.Decomposition{V: identity(2), Values: []float64{1}}, 2, false},
		{"nil V", evd.Decomposition{Values: []float64{1, 0}}, 2, false},
		{"V shape", evd.Decomposition{V: identity(3), Values: []float64{1, 0}}, 2, false},
		{"unsorted", evd.Decomposition{V: identity(2), Values: []float64{1, 2}}, 2, false},
		{"negative", evd.Decomposition{V: identity(2), Values: []float64{1, -1e-3}}, 2, false},
		{"NaN", evd.Decomposition{V: identity(2), Values: []float64{math.NaN(), 0}}, 2, false},
		{"Inf", evd.Decomposition{V: identity(2), Values: []float64{math.Inf(1), 0}}, 2, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := evd.Validate(tc.dec, tc.d)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, evd.ErrBadDecomposition)
		})
	}
}

func TestDecomposition_D(t *testing.T) {
	t.Parallel()

	dec := evd.Decomposition{V: identity(3), Values: []float64{3, 2, 1}}
	d := dec.D()
	require.NotNil(t, d)
	assert.Equal(t, 3, dec.Dim())
	assert.Equal(t, 2.0, d.At(1, 1))
	assert.Equal(t, 0.0, d.At(0, 1))

	// D returns a copy
	d.SetDiag(0, 42)
	assert.Equal(t, 3.0, dec.Values[0])

	assert.Nil(t, evd.Decomposition{}.D())
}

func TestCovariance(t *testing.T) {
	t.Parallel()

	x := mat.NewDense(3, 2, []float64{
		-1, 2,
		0, 0,
		1, -2,
	})
	pop, err := evd.Covariance(x, evd.Population)
	require.NoError(t, err)
	want := mat.NewSymDense(2, []float64{2.0 / 3, -4.0 / 3, -4.0 / 3, 8.0 / 3})
	assert.True(t, mat.EqualApprox(pop, want, 1e-15))

	smp, err := evd.Covariance(x, evd.Sample)
	require.NoError(t, err)
	want = mat.NewSymDense(2, []float64{1, -2, -2, 4})
	assert.True(t, mat.EqualApprox(smp, want, 1e-15))

	_, err = evd.Covariance(nil, evd.Population)
	require.ErrorIs(t, err, evd.ErrNilMatrix)
}

func TestParseNormalization(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]evd.Normalization{
		"":           evd.Population,
		"population": evd.Population,
		"sample":     evd.Sample,
		"bessel":     evd.Sample,
	} {
		got, err := evd.ParseNormalization(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := evd.ParseNormalization("median")
	require.Error(t, err)
	assert.Equal(t, "sample", evd.Sample.String())
	assert.Equal(t, "Normalization(9)", evd.Normalization(9).String())
}
