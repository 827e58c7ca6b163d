// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvpca/internal/dataset"
	"github.com/katalvlaran/lvpca/pca"
)

// errNoDirections reports a model that keeps no significant direction, so a
// transform would drop every input row.
var errNoDirections = errors.New("model retains no directions")

// createAndWrite creates path, runs write, and reports the first of the write
// and close errors.
func createAndWrite(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}

// kindValue adapts pca.TransformKind to pflag.Value.
type kindValue pca.TransformKind

var _ pflag.Value = (*kindValue)(nil)

func (k *kindValue) String() string { return pca.TransformKind(*k).String() }

func (k *kindValue) Set(s string) error {
	v, err := pca.ParseTransformKind(s)
	if err != nil {
		return err
	}
	*k = kindValue(v)

	return nil
}

func (k *kindValue) Type() string { return "rotation|whitening" }

func transformCmd(a *app) *cobra.Command {
	var (
		input   string
		outPath string
		kind    = kindValue(pca.Rotation)
	)
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Project input rows into the retained subspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, _, err := a.fit()
			if err != nil {
				return err
			}
			in, err := a.readInput(input)
			if err != nil {
				return err
			}
			if m.OutputDims() == 0 {
				return fmt.Errorf("%w: every direction is below the split cutoff (threshold %g)", errNoDirections, m.Threshold())
			}
			res, err := m.Transform(in.Data, pca.TransformKind(kind))
			if err != nil {
				return err
			}
			a.logger.Info().Stringer("kind", pca.TransformKind(kind)).Int("output_dims", m.OutputDims()).Msg("transformed")

			header := dataset.ColumnNames("pc", m.OutputDims())
			if outPath == "" {
				return dataset.Write(a.out, res, header)
			}

			return createAndWrite(outPath, func(w io.Writer) error { return dataset.Write(w, res, header) })
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&input, "input", "", "CSV of rows to transform")
	fl.StringVar(&outPath, "out", "", "output CSV (default stdout)")
	fl.Var(&kind, "kind", "transform kind (rotation|whitening)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
