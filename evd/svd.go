// SPDX-License-Identifier: MIT

package evd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SVD derives the covariance eigen-decomposition from the singular value
// decomposition of the centered data X = U·S·Vᵀ: the right singular vectors
// are the eigenvectors of XᵀX and λ_i = s_i² / divisor.
//
// It never forms XᵀX, so it is the most accurate of the built-in providers and
// the default of pca.Fit.
type SVD struct {
	opts options
}

var _ Provider = (*SVD)(nil)

// NewSVD returns an SVD-based provider.
func NewSVD(opts ...Option) *SVD {
	return &SVD{opts: gatherOptions(opts...)}
}

// Run implements Provider.
// Implementation:
//   - Stage 1: validate shape (n×d, both > 0).
//   - Stage 2: factorize with the full d×d V (noise directions are needed too).
//   - Stage 3: square and normalize singular values; when n < d the trailing
//     d-n eigenvalues are exactly 0.
//
// Complexity:
//   - Time O(n·d·min(n,d) + d³), Space O(d² + n·min(n,d)).
func (p *SVD) Run(centered mat.Matrix) (Decomposition, error) {
	n, d, err := dims(centered)
	if err != nil {
		return Decomposition{}, evdErrorf(opSVD, err)
	}

	var svd mat.SVD
	if ok := svd.Factorize(centered, mat.SVDFullV); !ok {
		return Decomposition{}, evdErrorf(opSVD, fmt.Errorf("%dx%d input: %w", n, d, ErrFactorizeFailed))
	}

	var v mat.Dense
	svd.VTo(&v)

	sv := svd.Values(nil) // descending, len == min(n, d)
	div := p.opts.norm.divisor(n)
	values := make([]float64, d)
	for i, s := range sv {
		values[i] = s * s / div
	}

	return Decomposition{V: &v, Values: values}, nil
}
