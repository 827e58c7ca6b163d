// SPDX-License-Identifier: MIT

package evd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Jacobi forms the covariance matrix and diagonalizes it with classical
// (max-pivot) Jacobi rotations. Slower than EigenSym, but pure Go loops with
// a fixed, deterministic traversal order and eigenvectors that are orthogonal
// to working precision by construction.
type Jacobi struct {
	opts options
}

var _ Provider = (*Jacobi)(nil)

// NewJacobi returns a covariance-then-Jacobi provider.
// Relevant options: WithNormalization, WithJacobiTolerance, WithMaxSweeps.
func NewJacobi(opts ...Option) *Jacobi {
	return &Jacobi{opts: gatherOptions(opts...)}
}

// Run implements Provider.
// Implementation:
//   - Stage 1: covariance C = XᵀX/divisor, copied into a flat row-major buffer A.
//   - Stage 2: repeat { pick (p,q) maximizing |A[p,q]|; stop when it is
//     ≤ tol·‖C‖_F; rotate A and accumulate the rotation into Q }.
//   - Stage 3: final convergence check, then sort eigenpairs descending.
//
// Errors:
//   - ErrNilMatrix / ErrEmptyMatrix from validation.
//   - ErrEigenFailed when the rotation budget is exhausted.
//
// Complexity:
//   - Time O(n·d²) for C, then O(d²) per pivot search + O(d) per rotation.
//   - Space O(d²).
func (p *Jacobi) Run(centered mat.Matrix) (Decomposition, error) {
	cov, err := Covariance(centered, p.opts.norm)
	if err != nil {
		return Decomposition{}, evdErrorf(opJacobi, err)
	}
	n := cov.SymmetricDim()

	// Stage 1: flat working copy A and identity accumulator Q.
	a := make([]float64, n*n)
	q := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a[i*n+j] = cov.At(i, j)
		}
		q[i*n+i] = 1.0
	}
	limit := p.opts.jacobiTol * mat.Norm(cov, 2) // Frobenius norm

	// Stage 2: Jacobi rotations.
	budget := p.opts.maxSweeps * max(1, n*(n-1)/2)
	var (
		rot                int
		pp, qq             int     // current pivot indices
		maxOff, off        float64 // largest |A[p,q]| and scratch
		app, aqq, apq      float64 // pivot block
		aip, aiq, qip, qiq float64
		theta, t, c, s     float64
	)
	for rot = 0; rot < budget; rot++ {
		maxOff, pp, qq = pivot(a, n)
		if maxOff <= limit {
			break
		}

		app = a[pp*n+pp]
		aqq = a[qq*n+qq]
		apq = a[pp*n+qq]
		// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)); c = 1/√(1+t²); s = t·c
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == pp || i == qq {
				continue
			}
			aip = a[i*n+pp]
			aiq = a[i*n+qq]
			a[i*n+pp], a[pp*n+i] = c*aip-s*aiq, c*aip-s*aiq
			a[i*n+qq], a[qq*n+i] = s*aip+c*aiq, s*aip+c*aiq
		}
		a[pp*n+pp] = c*c*app - 2*c*s*apq + s*s*aqq
		a[qq*n+qq] = s*s*app + 2*c*s*apq + c*c*aqq
		a[pp*n+qq], a[qq*n+pp] = 0, 0

		for i = 0; i < n; i++ {
			qip = q[i*n+pp]
			qiq = q[i*n+qq]
			q[i*n+pp] = c*qip - s*qiq
			q[i*n+qq] = s*qip + c*qiq
		}
	}

	// Stage 3: the loop may have stopped on budget rather than convergence.
	if off, _, _ = pivot(a, n); off > limit {
		return Decomposition{}, evdErrorf(opJacobi, fmt.Errorf("%d rotations, max off-diagonal %g: %w", rot, off, ErrEigenFailed))
	}

	values := make([]float64, n)
	for i = 0; i < n; i++ {
		values[i] = a[i*n+i]
	}

	return sortDescending(values, mat.NewDense(n, n, q)), nil
}

// pivot returns max |A[i,j]| over the strict upper triangle and its position.
// Ties resolve to the first pair in row-major order.
func pivot(a []float64, n int) (maxOff float64, p, q int) {
	var off float64
	for i := 0; i < n; i++ {
		base := i * n
		for j := i + 1; j < n; j++ {
			off = math.Abs(a[base+j])
			if off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return maxOff, p, q
}
