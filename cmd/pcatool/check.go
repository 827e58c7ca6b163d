// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether each input row lies in the fitted subspace",
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

			rows, cols := in.Data.Dims()
			var inside int
			fmt.Fprintln(a.out, "row,belongs")
			for i := 0; i < rows; i++ {
				ok, err := m.BelongsToGeneratedSubspace(in.Data.Slice(i, i+1, 0, cols))
				if err != nil {
					return fmt.Errorf("row %d: %w", i, err)
				}
				if ok {
					inside++
				}
				fmt.Fprintf(a.out, "%d,%t\n", i, ok)
			}
			a.logger.Info().Int("rows", rows).Int("inside", inside).Float64("threshold", m.Threshold()).Msg("membership checked")

			return nil
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "CSV of points to test")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
