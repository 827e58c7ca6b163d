// SPDX-License-Identifier: MIT

// Package pca - the fitted model.
//
// A Model is produced once by Fit and never mutated afterwards: every
// accessor returns a copy and every operation is a pure function of the model
// and its input, so a single *Model may be shared across goroutines without
// locking.

package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Model is a fitted PCA model.
type Model struct {
	inputDim  int
	center    bool
	means     []float64  // len inputDim; zeros when !center
	values    []float64  // retained eigenvalues, non-increasing (len k)
	rotation  *mat.Dense // d×k; nil when k == 0
	whitening *mat.Dense // d×k; nil when k == 0
	noise     *mat.Dense // d×(d-k); nil when k == d
	threshold float64    // MembershipMargin · sd(0) · tol
}

// InputDims returns d, the number of feature columns seen at fit time.
func (m *Model) InputDims() int { return m.inputDim }

// OutputDims returns k, the number of significant directions.
func (m *Model) OutputDims() int { return len(m.values) }

// NoiseDims returns d-k, the number of discarded directions.
func (m *Model) NoiseDims() int { return m.inputDim - len(m.values) }

// Centered reports whether inputs are mean-centered before projection.
func (m *Model) Centered() bool { return m.center }

// Threshold returns the residual bound used by BelongsToGeneratedSubspace.
func (m *Model) Threshold() float64 { return m.threshold }

// Means returns a copy of the per-column training means.
func (m *Model) Means() []float64 { return append([]float64(nil), m.means...) }

// Eigenvalues returns a copy of the retained eigenvalues, largest first.
func (m *Model) Eigenvalues() []float64 { return append([]float64(nil), m.values...) }

// Eigenvalue returns the i-th retained eigenvalue.
// Errors: ErrOutOfRange unless 0 ≤ i < OutputDims().
func (m *Model) Eigenvalue(i int) (float64, error) {
	if i < 0 || i >= len(m.values) {
		return 0, pcaErrorf(opEigenvalue, fmt.Errorf("index %d of %d: %w", i, len(m.values), ErrOutOfRange))
	}

	return m.values[i], nil
}

// EigenvectorsMatrix returns a copy of V_sig (d×k), the rotation transform.
// With k == 0 the result is an empty matrix (IsEmpty reports true).
func (m *Model) EigenvectorsMatrix() *mat.Dense { return copyOrEmpty(m.rotation) }

// WhiteningMatrix returns a copy of V_sig·diag(1/√λ) (d×k).
func (m *Model) WhiteningMatrix() *mat.Dense { return copyOrEmpty(m.whitening) }

// NoiseEigenvectors returns a copy of V_noise (d×(d-k)), the discarded directions.
func (m *Model) NoiseEigenvectors() *mat.Dense { return copyOrEmpty(m.noise) }

// Transform maps data (n×d) into the significant subspace.
// Implementation:
//   - Stage 1: select the transform for kind (exhaustive switch).
//   - Stage 2: check data has exactly InputDims() columns.
//   - Stage 3: center with the training means if enabled, then multiply.
//
// Behavior highlights:
//   - Rotation returns centered·V_sig; Whitening returns centered·V_sig·diag(1/√λ).
//   - n == 0 or k == 0 returns an empty matrix (gonum has no n×0 Dense).
//   - data is not mutated.
//
// Errors:
//   - ErrNilData, ErrDimensionMismatch (invalid argument).
//   - ErrUnknownTransform for a kind outside {Rotation, Whitening}.
//
// Complexity:
//   - Time O(n·d·k), Space O(n·k) (+ O(n·d) for the centered copy).
func (m *Model) Transform(data mat.Matrix, kind TransformKind) (*mat.Dense, error) {
	tr, err := m.transformation(kind)
	if err != nil {
		return nil, pcaErrorf(opTransform, err)
	}
	if data == nil {
		return nil, pcaErrorf(opTransform, ErrNilData)
	}
	n, c := data.Dims()
	if c != m.inputDim {
		return nil, pcaErrorf(opTransform, fmt.Errorf("%d columns, model has %d: %w", c, m.inputDim, ErrDimensionMismatch))
	}
	if n == 0 || tr == nil {
		return &mat.Dense{}, nil
	}

	var out mat.Dense
	out.Mul(m.prepare(data), tr)

	return &out, nil
}

// BelongsToGeneratedSubspace reports whether pt (1×d) lies in the subspace
// spanned by the significant directions, up to numerical noise.
// Implementation:
//   - Stage 1: check pt is a single row with InputDims() columns.
//   - Stage 2: center (if enabled) and project onto every noise direction.
//   - Stage 3: the point belongs iff each |residual_j| ≤ Threshold(); the
//     first residual over the bound short-circuits to false.
//
// Behavior highlights:
//   - With no noise directions (k == d) every point belongs.
//   - A NaN residual never belongs.
//
// Errors:
//   - ErrNilData, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(d·(d-k)), Space O(d).
func (m *Model) BelongsToGeneratedSubspace(pt mat.Matrix) (bool, error) {
	if pt == nil {
		return false, pcaErrorf(opBelongs, ErrNilData)
	}
	r, c := pt.Dims()
	if r != 1 || c != m.inputDim {
		return false, pcaErrorf(opBelongs, fmt.Errorf("point is %dx%d, want 1x%d: %w", r, c, m.inputDim, ErrDimensionMismatch))
	}
	if m.noise == nil {
		return true, nil
	}

	x := mat.NewVecDense(c, nil)
	for j := 0; j < c; j++ {
		x.SetVec(j, pt.At(0, j)-m.means[j]) // means are zero when !center
	}

	_, noiseDims := m.noise.Dims()
	var col mat.VecDense
	for j := 0; j < noiseDims; j++ {
		col.ColViewOf(m.noise, j)
		if !(math.Abs(mat.Dot(x, &col)) <= m.threshold) {
			return false, nil
		}
	}

	return true, nil
}

// transformation is the single dispatch site over TransformKind.
func (m *Model) transformation(kind TransformKind) (*mat.Dense, error) {
	switch kind {
	case Rotation:
		return m.rotation, nil
	case Whitening:
		return m.whitening, nil
	default:
		return nil, fmt.Errorf("%v: %w", kind, ErrUnknownTransform)
	}
}

// prepare returns data centered by the training means, or data itself.
func (m *Model) prepare(data mat.Matrix) mat.Matrix {
	if !m.center {
		return data
	}

	return subtractMeans(data, m.means)
}

func copyOrEmpty(src *mat.Dense) *mat.Dense {
	if src == nil {
		return &mat.Dense{}
	}

	return mat.DenseCopyOf(src)
}
