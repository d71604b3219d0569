package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cutoffsCmd = &cobra.Command{
	Use:   "cutoffs",
	Short: "Print the model's calibrated cutoff triple",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadScorer(cmd)
		if err != nil {
			return err
		}

		c := s.CutoffScores()
		fmt.Fprintf(cmd.OutOrStdout(), "strict\t%.6f\navg\t%.6f\nloose\t%.6f\n", c.Strict, c.Avg, c.Loose)

		return nil
	},
}
