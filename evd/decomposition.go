// SPDX-License-Identifier: MIT

// Package evd - the (V, D) contract and the Provider capability.
//
// Purpose:
//   - Describe the eigen-decomposition of a covariance matrix as consumed by pca.Fit.
//   - Keep providers interchangeable: anything returning a conforming Decomposition
//     (SVD-based, EigenSym-based, Jacobi-based, user supplied) can be plugged in.
//
// Contract (checked by Validate):
//   - V is d×d with orthonormal columns.
//   - Values has length d, every value finite and ≥ 0, sorted non-increasing.
//   - Values[i] is the eigenvalue of column i of V.

package evd

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Decomposition is the eigen-decomposition of a d×d covariance matrix.
type Decomposition struct {
	V      *mat.Dense // d×d, column i is the i-th unit eigenvector
	Values []float64  // eigenvalues, non-increasing, aligned with V's columns
}

// Dim returns d, the number of eigenpairs.
func (dec Decomposition) Dim() int { return len(dec.Values) }

// D returns the eigenvalues as a d×d diagonal matrix.
// It returns nil when d == 0 (gonum has no zero-sized DiagDense).
func (dec Decomposition) D() *mat.DiagDense {
	if len(dec.Values) == 0 {
		return nil
	}
	vals := make([]float64, len(dec.Values))
	copy(vals, dec.Values)

	return mat.NewDiagDense(len(vals), vals)
}

// Provider computes the eigen-decomposition of the covariance matrix of
// already-centered data. Implementations must not retain or mutate centered.
type Provider interface {
	Run(centered mat.Matrix) (Decomposition, error)
}

// ProviderFunc adapts an ordinary function to the Provider interface.
type ProviderFunc func(centered mat.Matrix) (Decomposition, error)

// Run calls f(centered).
func (f ProviderFunc) Run(centered mat.Matrix) (Decomposition, error) { return f(centered) }

// Normalization selects the divisor applied to XᵀX when forming the covariance.
type Normalization int

const (
	// Population divides by n (the number of samples).
	Population Normalization = iota
	// Sample divides by n-1 (Bessel's correction); n == 1 falls back to 1.
	Sample
)

// String implements fmt.Stringer.
func (n Normalization) String() string {
	switch n {
	case Population:
		return "population"
	case Sample:
		return "sample"
	default:
		return fmt.Sprintf("Normalization(%d)", int(n))
	}
}

// ParseNormalization maps "population" / "sample" to a Normalization.
func ParseNormalization(s string) (Normalization, error) {
	switch s {
	case "population", "":
		return Population, nil
	case "sample", "bessel":
		return Sample, nil
	default:
		return Population, fmt.Errorf("evd: unknown normalization %q", s)
	}
}

// divisor returns the covariance denominator for n samples.
func (n Normalization) divisor(samples int) float64 {
	if n == Sample && samples > 1 {
		return float64(samples - 1)
	}
	if samples < 1 {
		return 1
	}

	return float64(samples)
}

// Validate checks dec against the (V, D) contract for dimension d.
// Orthonormality of V is not re-verified here (O(d³)); shape, ordering and
// finiteness are.
//
// Errors:
//   - ErrBadDecomposition (wrapped with the offending detail).
func Validate(dec Decomposition, d int) error {
	if len(dec.Values) != d {
		return evdErrorf(opValidate, fmt.Errorf("%d eigenvalues for dimension %d: %w", len(dec.Values), d, ErrBadDecomposition))
	}
	if d == 0 {
		return nil
	}
	if dec.V == nil {
		return evdErrorf(opValidate, fmt.Errorf("nil eigenvector matrix: %w", ErrBadDecomposition))
	}
	if r, c := dec.V.Dims(); r != d || c != d {
		return evdErrorf(opValidate, fmt.Errorf("eigenvectors %dx%d, want %dx%d: %w", r, c, d, d, ErrBadDecomposition))
	}
	if floats.HasNaN(dec.Values) {
		return evdErrorf(opValidate, fmt.Errorf("NaN eigenvalue: %w", ErrBadDecomposition))
	}
	for i, v := range dec.Values {
		if v < 0 || math.IsInf(v, 0) {
			return evdErrorf(opValidate, fmt.Errorf("eigenvalue[%d]=%g: %w", i, v, ErrBadDecomposition))
		}
		if i > 0 && v > dec.Values[i-1] {
			return evdErrorf(opValidate, fmt.Errorf("eigenvalues not sorted at %d: %w", i, ErrBadDecomposition))
		}
	}

	return nil
}

// Covariance returns XᵀX / divisor for already-centered X (n×d).
// No centering happens here: the caller decides whether X is centered.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix.
//
// Complexity:
//   - Time O(n·d²), Space O(d²).
func Covariance(centered mat.Matrix, norm Normalization) (*mat.SymDense, error) {
	n, d, err := dims(centered)
	if err != nil {
		return nil, evdErrorf(opCovariance, err)
	}
	cov := mat.NewSymDense(d, nil)
	// SymOuterK computes alpha·x·xᵀ; with x = Xᵀ (d×n) that is XᵀX.
	cov.SymOuterK(1/norm.divisor(n), centered.T())

	return cov, nil
}

// dims validates a provider input and returns its shape.
func dims(m mat.Matrix) (rows, cols int, err error) {
	if m == nil {
		return 0, 0, ErrNilMatrix
	}
	rows, cols = m.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, ErrEmptyMatrix
	}

	return rows, cols, nil
}

// roundoff is the unit round-off of float64 (2⁻⁵²).
const roundoff = 0x1p-52

// sortDescending reorders eigenpairs so values are non-increasing, keeping
// each column of vecs aligned with its value. Ties keep their original
// relative order.
//
// Values at or below d·ε·max(values), the round-off floor of a symmetric
// eigensolver applied to an explicit covariance, become exactly 0, as do
// negative values. A null direction then reaches the splitter as a zero
// rather than as ~ε·λ0, whose √ would sit at the default cutoff.
func sortDescending(values []float64, vecs *mat.Dense) Decomposition {
	d := len(values)
	var floor float64
	if d > 0 && !floats.HasNaN(values) {
		floor = float64(d) * roundoff * floats.Max(values)
	}
	order := make([]int, d)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return values[order[a]] > values[order[b]] })

	sorted := make([]float64, d)
	v := mat.NewDense(d, d, nil)
	col := make([]float64, d)
	for dst, src := range order {
		switch lambda := values[src]; {
		case math.IsNaN(lambda): // left for Validate to reject
			sorted[dst] = lambda
		case lambda > floor && lambda > 0:
			sorted[dst] = lambda
		}
		mat.Col(col, src, vecs)
		v.SetCol(dst, col)
	}

	return Decomposition{V: v, Values: sorted}
}
