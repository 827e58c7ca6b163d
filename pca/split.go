// SPDX-License-Identifier: MIT

// Package pca - threshold splitter.
//
// Purpose:
//   - Partition a full eigen-decomposition into a significant prefix and a
//     noise suffix with a cutoff relative to the largest standard deviation,
//     so the split is independent of the units of the input.
//
// Rule:
//   - sd(i) = √λ_i, non-increasing.
//   - base  = sd(0) · tol.
//   - k     = first i with sd(i) ≤ base, or d when there is none.
//   - The membership threshold is MembershipMargin · base.

package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/evd"
)

// Partition is the result of Split.
type Partition struct {
	K             int        // number of significant directions
	Values        []float64  // retained eigenvalues λ_0..λ_{K-1} (the D_sig diagonal)
	VSig          *mat.Dense // d×K significant eigenvectors; nil when K == 0
	VNoise        *mat.Dense // d×(d-K) discarded eigenvectors; nil when K == d
	BaseThreshold float64    // sd(0)·tol
}

// NoiseDims returns d-K.
func (p Partition) NoiseDims() int {
	if p.VNoise == nil {
		return 0
	}
	_, c := p.VNoise.Dims()

	return c
}

// MembershipThreshold returns the residual bound of the subspace test.
func (p Partition) MembershipThreshold() float64 { return MembershipMargin * p.BaseThreshold }

// Split partitions dec at the first standard deviation not above
// sd(0)·tol.
// Implementation:
//   - Stage 1: validate tol and the (V, D) contract of dec.
//   - Stage 2: scan sd(i) once; the comparison is written as !(sd > base) so
//     a NaN standard deviation ends the significant prefix.
//   - Stage 3: copy the column blocks V[:,0:k] and V[:,k:d].
//
// Behavior highlights:
//   - Eigenvalues are already sorted, so the split point is unique; no ranking.
//   - d == 0 or an all-zero spectrum yields K == 0, which is a valid state.
//   - Returned matrices are copies; dec is not retained.
//
// Errors:
//   - ErrBadTolerance when tol is negative or not finite.
//   - evd.ErrBadDecomposition (wrapped) when dec breaks the (V, D) contract.
//
// Complexity:
//   - Time O(d²) for the copies, Space O(d²).
func Split(dec evd.Decomposition, tol float64) (Partition, error) {
	// Stage 1: validate.
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return Partition{}, pcaErrorf(opSplit, fmt.Errorf("tolerance %g: %w", tol, ErrBadTolerance))
	}
	d := dec.Dim()
	if err := evd.Validate(dec, d); err != nil {
		return Partition{}, pcaErrorf(opSplit, err)
	}
	if d == 0 {
		return Partition{}, nil
	}

	// Stage 2: locate the first noise direction.
	base := math.Sqrt(dec.Values[0]) * tol
	k := d
	for i, v := range dec.Values {
		if !(math.Sqrt(v) > base) {
			k = i
			break
		}
	}

	// Stage 3: materialize the blocks.
	part := Partition{
		K:             k,
		Values:        append([]float64(nil), dec.Values[:k]...),
		BaseThreshold: base,
	}
	if k > 0 {
		part.VSig = mat.DenseCopyOf(dec.V.Slice(0, d, 0, k))
	}
	if k < d {
		part.VNoise = mat.DenseCopyOf(dec.V.Slice(0, d, k, d))
	}

	return part, nil
}
