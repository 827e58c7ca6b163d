// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvpca/evd"
	"github.com/katalvlaran/lvpca/internal/config"
	"github.com/katalvlaran/lvpca/pca"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pcatool.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.NoError(t, cfg.Validate())
	require.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestLoad_Overlay(t *testing.T) {
	path := writeConfig(t, `
provider: jacobi
normalization: sample
tolerance: 0.001
jacobi:
  max_sweeps: 7
log_level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.ProviderJacobi, cfg.Provider)
	require.Equal(t, "sample", cfg.Normalization)
	require.Equal(t, 0.001, cfg.Tolerance)
	require.Equal(t, 7, cfg.Jacobi.MaxSweeps)
	require.Equal(t, evd.DefaultJacobiTolerance, cfg.Jacobi.Tolerance, "absent keys keep defaults")
	require.True(t, cfg.Center)
	require.Equal(t, zerolog.DebugLevel, cfg.Level())

	p, err := cfg.NewProvider()
	require.NoError(t, err)
	require.IsType(t, &evd.Jacobi{}, p)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]string{
		"provider":      "provider: lanczos\n",
		"normalization": "normalization: median\n",
		"tolerance":     "tolerance: -1\n",
		"min eigen":     "min_eigenvalue: -0.5\n",
		"sweeps":        "jacobi:\n  max_sweeps: 0\n",
		"jacobi tol":    "jacobi:\n  tolerance: 0\n",
		"log level":     "log_level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeConfig(t, "provider: [\n"))
	require.Error(t, err)
	_, err = config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOptions_DriveFit(t *testing.T) {
	cfg := config.Default()
	cfg.Provider = config.ProviderEigenSym
	cfg.Center = false
	opts, err := cfg.Options(zerolog.Nop())
	require.NoError(t, err)

	m, err := pca.Fit(mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 7}), opts...)
	require.NoError(t, err)
	require.False(t, m.Centered())

	cfg.Tolerance = -3
	_, err = cfg.Options(zerolog.Nop())
	require.ErrorIs(t, err, config.ErrInvalid)
}
