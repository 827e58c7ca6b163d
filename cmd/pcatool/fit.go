// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpca/pca"
)

// summary is the printable view of a fitted model.
type summary struct {
	Samples      int       `yaml:"samples"`
	InputDims    int       `yaml:"input_dims"`
	OutputDims   int       `yaml:"output_dims"`
	NoiseDims    int       `yaml:"noise_dims"`
	Centered     bool      `yaml:"centered"`
	Provider     string    `yaml:"provider"`
	Means        []float64 `yaml:"means,flow"`
	Eigenvalues  []float64 `yaml:"eigenvalues,flow"`
	Threshold    float64   `yaml:"threshold"`
	ColumnLabels []string  `yaml:"columns,flow,omitempty"`
}

func newSummary(m *pca.Model, samples int, provider string, header []string) summary {
	return summary{
		Samples:      samples,
		InputDims:    m.InputDims(),
		OutputDims:   m.OutputDims(),
		NoiseDims:    m.NoiseDims(),
		Centered:     m.Centered(),
		Provider:     provider,
		Means:        m.Means(),
		Eigenvalues:  m.Eigenvalues(),
		Threshold:    m.Threshold(),
		ColumnLabels: header,
	}
}

func fitCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a model and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, tab, err := a.fit()
			if err != nil {
				return err
			}
			rows, _ := tab.Data.Dims()
			s := newSummary(m, rows, a.cfg.Provider, tab.Header)
			a.logger.Info().Int("output_dims", s.OutputDims).Int("noise_dims", s.NoiseDims).Msg("model fitted")

			switch format {
			case "yaml":
				enc := yaml.NewEncoder(a.out)
				enc.SetIndent(2)
				if err = enc.Encode(s); err != nil {
					return err
				}
				return enc.Close()
			case "table":
				return writeTable(a, s)
			default:
				return fmt.Errorf("unknown format %q (table|yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format (table|yaml)")

	return cmd
}

func writeTable(a *app, s summary) error {
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "samples\t%d\n", s.Samples)
	fmt.Fprintf(tw, "input dims\t%d\n", s.InputDims)
	fmt.Fprintf(tw, "output dims\t%d\n", s.OutputDims)
	fmt.Fprintf(tw, "noise dims\t%d\n", s.NoiseDims)
	fmt.Fprintf(tw, "centered\t%t\n", s.Centered)
	fmt.Fprintf(tw, "provider\t%s\n", s.Provider)
	fmt.Fprintf(tw, "means\t%s\n", joinFloats(s.Means))
	fmt.Fprintf(tw, "eigenvalues\t%s\n", joinFloats(s.Eigenvalues))
	fmt.Fprintf(tw, "threshold\t%g\n", s.Threshold)

	return tw.Flush()
}

func joinFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', 6, 64)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
