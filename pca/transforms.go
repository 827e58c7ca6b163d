// SPDX-License-Identifier: MIT

package pca

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// TransformKind selects the linear map applied by Model.Transform.
type TransformKind int

const (
	// Rotation projects centered data onto the significant eigenvectors;
	// output variances equal the retained eigenvalues.
	Rotation TransformKind = iota + 1
	// Whitening is Rotation rescaled so every output column has unit variance
	// under the training distribution.
	Whitening
)

// String implements fmt.Stringer.
func (k TransformKind) String() string {
	switch k {
	case Rotation:
		return "rotation"
	case Whitening:
		return "whitening"
	default:
		return fmt.Sprintf("TransformKind(%d)", int(k))
	}
}

// ParseTransformKind maps "rotation" / "whitening" (case-insensitive) to a kind.
func ParseTransformKind(s string) (TransformKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rotation":
		return Rotation, nil
	case "whitening":
		return Whitening, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownTransform)
	}
}

// buildWhitening returns V_sig · diag(1/√λ_i).
// Implementation:
//   - Stage 1: compute every scale factor, failing fast on a degenerate λ.
//   - Stage 2: one d×k · k×k product.
//
// Behavior highlights:
//   - λ ≤ 0, λ < floor, or a non-finite 1/√λ abort with ErrDegenerateEigenvalue;
//     non-finite values never reach the transform.
//   - k == 0 returns (nil, nil): whitening has zero output dimensions.
//
// Complexity:
//   - Time O(d·k²) (dense product), Space O(d·k).
func buildWhitening(rotation *mat.Dense, values []float64, floor float64) (*mat.Dense, error) {
	k := len(values)
	if k == 0 {
		return nil, nil
	}

	scale := make([]float64, k)
	for i, lambda := range values {
		if !(lambda > 0) || lambda < floor {
			return nil, pcaErrorf(opWhitening, fmt.Errorf("eigenvalue[%d]=%g (floor %g): %w", i, lambda, floor, ErrDegenerateEigenvalue))
		}
		scale[i] = 1 / math.Sqrt(lambda)
		if math.IsInf(scale[i], 0) || math.IsNaN(scale[i]) {
			return nil, pcaErrorf(opWhitening, fmt.Errorf("eigenvalue[%d]=%g: %w", i, lambda, ErrDegenerateEigenvalue))
		}
	}

	var w mat.Dense
	w.Mul(rotation, mat.NewDiagDense(k, scale))

	return &w, nil
}
