// SPDX-License-Identifier: MIT

// Package pca: functional configuration of Fit.
// This file defines:
//   - Option (functional setter) and the internal options snapshot,
//   - documented defaults (constants, single source of truth),
//   - WithX constructors (panic on nonsensical values: programmer error),
//   - gatherOptions, the one place defaults and setters are resolved.

package pca

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvpca/evd"
)

// Defaults.
const (
	// DefaultCenter subtracts the training column means on fit and on every
	// later Transform / BelongsToGeneratedSubspace call.
	DefaultCenter = true

	// DefaultTolerance is √(2⁻⁵²), the square root of double-precision machine
	// epsilon. A direction is noise when its standard deviation is at most
	// DefaultTolerance times the largest one.
	DefaultTolerance = 1.4901161193847656e-8

	// DefaultMinEigenvalue is the smallest retained eigenvalue accepted by the
	// whitening builder (exclusive of zero, which is always rejected).
	DefaultMinEigenvalue = 0.0

	// MembershipMargin widens the split cutoff for the membership test.
	MembershipMargin = 3.0
)

const (
	panicProviderNil      = "pca: WithProvider: provider must not be nil"
	panicToleranceInvalid = "pca: WithTolerance: tol must be finite and non-negative"
	panicMinEigenInvalid  = "pca: WithMinEigenvalue: floor must be finite and non-negative"
)

// Option configures Fit.
type Option func(*options)

type options struct {
	center   bool
	provider evd.Provider
	tol      float64
	minEigen float64
	logger   zerolog.Logger
}

// WithCentering enables or disables mean-centering.
func WithCentering(center bool) Option {
	return func(o *options) { o.center = center }
}

// WithoutCentering is shorthand for WithCentering(false). The stored means
// are then all zero and inputs are projected as given.
func WithoutCentering() Option { return WithCentering(false) }

// WithProvider replaces the default SVD-based eigen-decomposition provider.
// Panics on nil.
func WithProvider(p evd.Provider) Option {
	if p == nil {
		panic(panicProviderNil)
	}

	return func(o *options) { o.provider = p }
}

// WithTolerance overrides the relative split tolerance (see DefaultTolerance).
// Larger values discard more directions; 0 keeps every direction with
// non-zero variance.
//
// Panics on NaN, ±Inf or negative tol.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithMinEigenvalue makes Fit fail with ErrDegenerateEigenvalue when a
// retained eigenvalue is below floor. Use it together with a loose
// WithTolerance to keep whitening factors bounded.
func WithMinEigenvalue(floor float64) Option {
	if math.IsNaN(floor) || math.IsInf(floor, 0) || floor < 0 {
		panic(panicMinEigenInvalid)
	}

	return func(o *options) { o.minEigen = floor }
}

// WithLogger routes fit diagnostics (debug level) to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// gatherOptions applies setters over the defaults (last-writer-wins).
func gatherOptions(user ...Option) options {
	o := options{
		center:   DefaultCenter,
		tol:      DefaultTolerance,
		minEigen: DefaultMinEigenvalue,
		logger:   zerolog.Nop(),
	}
	for _, set := range user {
		set(&o)
	}
	if o.provider == nil {
		o.provider = evd.NewSVD()
	}

	return o
}
