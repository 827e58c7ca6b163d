// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpca/internal/config"
	"github.com/katalvlaran/lvpca/internal/dataset"
	"github.com/katalvlaran/lvpca/pca"
)

// app is the state shared by every subcommand.
type app struct {
	out     io.Writer
	cfgPath string
	cfg     config.Config
	logger  zerolog.Logger

	// flag targets, applied over the config file only when set
	center   bool
	provider string
	norm     string
	tol      float64
	minEigen float64
	logLevel string
	dataPath string
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: log.Logger}
	def := config.Default()

	root := &cobra.Command{
		Use:           "pcatool",
		Short:         "Fit PCA models on CSV data and apply them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", def.LogLevel, "log level (trace|debug|info|warn|error)")
	pf.BoolVar(&a.center, "center", def.Center, "subtract training column means")
	pf.StringVar(&a.provider, "provider", def.Provider, "eigen-decomposition provider (svd|eigensym|jacobi)")
	pf.StringVar(&a.norm, "normalization", def.Normalization, "covariance divisor (population|sample)")
	pf.Float64Var(&a.tol, "tolerance", def.Tolerance, "relative standard-deviation cutoff")
	pf.Float64Var(&a.minEigen, "min-eigenvalue", def.MinEigenvalue, "smallest retained eigenvalue accepted for whitening")
	pf.StringVar(&a.dataPath, "data", "", "training CSV (one sample per row)")
	_ = root.MarkPersistentFlagRequired("data")

	root.AddCommand(fitCmd(a), transformCmd(a), checkCmd(a))

	return root
}

// configure loads the config file and overlays explicitly set flags.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("center") {
		cfg.Center = a.center
	}
	if flags.Changed("provider") {
		cfg.Provider = a.provider
	}
	if flags.Changed("normalization") {
		cfg.Normalization = a.norm
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = a.tol
	}
	if flags.Changed("min-eigenvalue") {
		cfg.MinEigenvalue = a.minEigen
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = a.logger.Level(cfg.Level())

	return nil
}

// fit reads the training CSV and fits a model with the resolved options.
func (a *app) fit() (*pca.Model, dataset.Table, error) {
	tab, err := dataset.ReadFile(a.dataPath)
	if err != nil {
		return nil, dataset.Table{}, err
	}
	opts, err := a.cfg.Options(a.logger)
	if err != nil {
		return nil, dataset.Table{}, err
	}
	m, err := pca.Fit(tab.Data, opts...)
	if err != nil {
		return nil, dataset.Table{}, err
	}

	return m, tab, nil
}

// readInput reads a CSV of points; column checks are left to the model.
func (a *app) readInput(path string) (dataset.Table, error) {
	tab, err := dataset.ReadFile(path)
	if err != nil {
		return dataset.Table{}, err
	}
	rows, cols := tab.Data.Dims()
	a.logger.Debug().Str("path", path).Int("rows", rows).Int("cols", cols).Msg("input loaded")

	return tab, nil
}
