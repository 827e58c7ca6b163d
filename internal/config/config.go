// SPDX-License-Identifier: MIT

// Package config loads pcatool settings from YAML and resolves them into
// pca options.
//
// Resolution order: built-in defaults, then the YAML file (keys that are
// absent keep their default), then command-line flags applied by the caller.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpca/evd"
	"github.com/katalvlaran/lvpca/pca"
)

// Provider names accepted in the file and on the command line.
const (
	ProviderSVD      = "svd"
	ProviderEigenSym = "eigensym"
	ProviderJacobi   = "jacobi"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config is the on-disk shape of a pcatool configuration file.
type Config struct {
	Center        bool    `yaml:"center"`
	Provider      string  `yaml:"provider"`
	Normalization string  `yaml:"normalization"`
	Tolerance     float64 `yaml:"tolerance"`
	MinEigenvalue float64 `yaml:"min_eigenvalue"`
	Jacobi        Jacobi  `yaml:"jacobi"`
	LogLevel      string  `yaml:"log_level"`
}

// Jacobi holds the settings that only the jacobi provider reads.
type Jacobi struct {
	Tolerance float64 `yaml:"tolerance"`
	MaxSweeps int     `yaml:"max_sweeps"`
}

// Default returns the configuration matching the library defaults.
func Default() Config {
	return Config{
		Center:        pca.DefaultCenter,
		Provider:      ProviderSVD,
		Normalization: evd.DefaultNormalization.String(),
		Tolerance:     pca.DefaultTolerance,
		MinEigenvalue: pca.DefaultMinEigenvalue,
		Jacobi: Jacobi{
			Tolerance: evd.DefaultJacobiTolerance,
			MaxSweeps: evd.DefaultMaxSweeps,
		},
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// Load reads path over Default. An empty path returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field. The option constructors panic on the same
// inputs, so Options must only be called on a validated Config.
func (c Config) Validate() error {
	switch strings.ToLower(c.Provider) {
	case ProviderSVD, ProviderEigenSym, ProviderJacobi:
	default:
		return fmt.Errorf("provider %q: %w", c.Provider, ErrInvalid)
	}
	if _, err := evd.ParseNormalization(strings.ToLower(c.Normalization)); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	if !finiteNonNegative(c.Tolerance) {
		return fmt.Errorf("tolerance %g: %w", c.Tolerance, ErrInvalid)
	}
	if !finiteNonNegative(c.MinEigenvalue) {
		return fmt.Errorf("min_eigenvalue %g: %w", c.MinEigenvalue, ErrInvalid)
	}
	if !(c.Jacobi.Tolerance > 0) || math.IsInf(c.Jacobi.Tolerance, 0) {
		return fmt.Errorf("jacobi.tolerance %g: %w", c.Jacobi.Tolerance, ErrInvalid)
	}
	if c.Jacobi.MaxSweeps < 1 {
		return fmt.Errorf("jacobi.max_sweeps %d: %w", c.Jacobi.MaxSweeps, ErrInvalid)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalid)
	}

	return nil
}

// NewProvider builds the eigen-decomposition provider named by c.Provider.
func (c Config) NewProvider() (evd.Provider, error) {
	norm, err := evd.ParseNormalization(strings.ToLower(c.Normalization))
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalid)
	}
	switch strings.ToLower(c.Provider) {
	case ProviderSVD:
		return evd.NewSVD(evd.WithNormalization(norm)), nil
	case ProviderEigenSym:
		return evd.NewEigenSym(evd.WithNormalization(norm)), nil
	case ProviderJacobi:
		return evd.NewJacobi(
			evd.WithNormalization(norm),
			evd.WithJacobiTolerance(c.Jacobi.Tolerance),
			evd.WithMaxSweeps(c.Jacobi.MaxSweeps),
		), nil
	default:
		return nil, fmt.Errorf("provider %q: %w", c.Provider, ErrInvalid)
	}
}

// Options validates c and resolves it into pca.Fit options.
func (c Config) Options(logger zerolog.Logger) ([]pca.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p, err := c.NewProvider()
	if err != nil {
		return nil, err
	}

	return []pca.Option{
		pca.WithCentering(c.Center),
		pca.WithProvider(p),
		pca.WithTolerance(c.Tolerance),
		pca.WithMinEigenvalue(c.MinEigenvalue),
		pca.WithLogger(logger),
	}, nil
}

// Level returns the parsed log level (info when unset).
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || c.LogLevel == "" {
		return zerolog.InfoLevel
	}

	return lvl
}

func finiteNonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
