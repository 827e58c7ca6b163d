// SPDX-License-Identifier: MIT

// Package evd: functional configuration shared by the built-in providers.
//   - documented defaults (constants, single source of truth),
//   - WithX constructors that panic on nonsensical values (programmer error),
//   - gatherOptions resolves setters over defaults (last-writer-wins).

package evd

import "math"

// Defaults.
const (
	// DefaultNormalization reproduces "eigenvalue = variance along the
	// direction" with the population divisor n.
	DefaultNormalization = Population

	// DefaultJacobiTolerance is the relative off-diagonal threshold at which
	// Jacobi sweeps stop: max|A[p,q]| < tol·‖A‖_F.
	DefaultJacobiTolerance = 1e-14

	// DefaultMaxSweeps caps the number of Jacobi sweeps.
	DefaultMaxSweeps = 100
)

const (
	panicNormalizationInvalid = "evd: WithNormalization: unknown normalization"
	panicToleranceInvalid     = "evd: WithJacobiTolerance: tol must be finite and > 0"
	panicSweepsInvalid        = "evd: WithMaxSweeps: sweeps must be > 0"
)

// Option mutates provider options.
type Option func(*options)

type options struct {
	norm      Normalization
	jacobiTol float64
	maxSweeps int
}

// WithNormalization selects the covariance divisor (Population or Sample).
// Panics on values outside the enum.
func WithNormalization(n Normalization) Option {
	if n != Population && n != Sample {
		panic(panicNormalizationInvalid)
	}

	return func(o *options) { o.norm = n }
}

// WithJacobiTolerance sets the relative convergence threshold of NewJacobi.
// Ignored by the other providers.
func WithJacobiTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.jacobiTol = tol }
}

// WithMaxSweeps sets the sweep budget of NewJacobi. One sweep visits every
// off-diagonal pair once, i.e. d(d-1)/2 rotations.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicSweepsInvalid)
	}

	return func(o *options) { o.maxSweeps = sweeps }
}

func gatherOptions(user ...Option) options {
	o := options{
		norm:      DefaultNormalization,
		jacobiTol: DefaultJacobiTolerance,
		maxSweeps: DefaultMaxSweeps,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
