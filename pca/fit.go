// SPDX-License-Identifier: MIT

// Package pca - fitting.
//
// Purpose:
//   - Turn an n×d training matrix into an immutable Model in one blocking call.
//
// Pipeline:
//   - column means → (optional) centering → provider eigen-decomposition →
//     contract validation → threshold split → whitening build.

package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvpca/evd"
)

// Fit estimates a PCA model from data (n×d, one sample per row).
// Implementation:
//   - Stage 1: validate data (non-nil, n ≥ 1, finite) and compute column means.
//   - Stage 2: center a copy of data when centering is enabled.
//   - Stage 3: run the provider and check its output against the (V, D) contract.
//   - Stage 4: Split at sd(0)·tol; build rotation (V_sig) and whitening
//     (V_sig·diag(1/√λ)).
//
// Behavior highlights:
//   - data is never mutated.
//   - d == 0 yields a model with zero output and zero noise dimensions.
//   - When centering is disabled the stored means are all zero.
//
// Inputs:
//   - data: training samples.
//   - opts: WithCentering/WithoutCentering, WithProvider, WithTolerance,
//     WithMinEigenvalue, WithLogger.
//
// Returns:
//   - *Model, safe for concurrent use.
//
// Errors:
//   - ErrNilData, ErrNoSamples, ErrNaNInf for unusable data.
//   - Provider errors (wrapped), evd.ErrBadDecomposition for non-conforming output.
//   - ErrDegenerateEigenvalue when a retained eigenvalue cannot be whitened.
//
// Complexity:
//   - O(n·d) for means/centering plus the provider cost
//     (SVD: O(n·d·min(n,d) + d³)).
func Fit(data mat.Matrix, opts ...Option) (*Model, error) {
	o := gatherOptions(opts...)

	// Stage 1: validate and summarize.
	if data == nil {
		return nil, pcaErrorf(opFit, ErrNilData)
	}
	n, d := data.Dims()
	if n == 0 {
		return nil, pcaErrorf(opFit, ErrNoSamples)
	}
	means, err := columnMeans(data)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 2: centering.
	var centered mat.Matrix = data
	if o.center {
		centered = subtractMeans(data, means)
	} else {
		means = make([]float64, d)
	}

	m := &Model{inputDim: d, center: o.center, means: means}
	if d == 0 {
		return m, nil
	}

	// Stage 3: eigen-decomposition.
	dec, err := o.provider.Run(centered)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	if err = evd.Validate(dec, d); err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	// Stage 4: split and transforms.
	part, err := Split(dec, o.tol)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}
	whitening, err := buildWhitening(part.VSig, part.Values, o.minEigen)
	if err != nil {
		return nil, pcaErrorf(opFit, err)
	}

	m.values = part.Values
	m.rotation = part.VSig
	m.whitening = whitening
	m.noise = part.VNoise
	m.threshold = part.MembershipThreshold()

	o.logger.Debug().
		Int("samples", n).
		Int("input_dims", d).
		Int("output_dims", part.K).
		Int("noise_dims", part.NoiseDims()).
		Float64("threshold", m.threshold).
		Bool("centered", o.center).
		Str("provider", fmt.Sprintf("%T", o.provider)).
		Msg("pca: model fitted")

	return m, nil
}

// CovarianceMatrix centers data by its column means and returns its
// covariance under norm. It is the matrix whose eigen-decomposition Fit
// consumes with the default centering.
func CovarianceMatrix(data mat.Matrix, norm evd.Normalization) (*mat.SymDense, error) {
	if data == nil {
		return nil, pcaErrorf(opCovariance, ErrNilData)
	}
	if n, _ := data.Dims(); n == 0 {
		return nil, pcaErrorf(opCovariance, ErrNoSamples)
	}
	means, err := columnMeans(data)
	if err != nil {
		return nil, pcaErrorf(opCovariance, err)
	}
	cov, err := evd.Covariance(subtractMeans(data, means), norm)
	if err != nil {
		return nil, pcaErrorf(opCovariance, err)
	}

	return cov, nil
}

// columnMeans returns the arithmetic mean of every column, rejecting
// non-finite entries. data must have at least one row.
func columnMeans(data mat.Matrix) ([]float64, error) {
	n, d := data.Dims()
	means := make([]float64, d)
	col := make([]float64, n)
	for j := 0; j < d; j++ {
		mat.Col(col, j, data)
		if floats.HasNaN(col) || math.IsInf(floats.Max(col), 1) || math.IsInf(floats.Min(col), -1) {
			return nil, fmt.Errorf("column %d: %w", j, ErrNaNInf)
		}
		means[j] = stat.Mean(col, nil)
	}

	return means, nil
}

// subtractMeans returns a copy of data with means[j] subtracted from column j.
func subtractMeans(data mat.Matrix, means []float64) *mat.Dense {
	n, d := data.Dims()
	if n == 0 || d == 0 {
		return &mat.Dense{}
	}
	out := mat.NewDense(n, d, nil)
	out.Apply(func(_, j int, v float64) float64 { return v - means[j] }, data)

	return out
}
