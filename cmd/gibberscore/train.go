package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gibberish "github.com/troyfeng116/gibberish-scorer"
)

var trainCmd = &cobra.Command{
	Use:   "train [corpus files...]",
	Short: "Train a model from corpus files and write a snapshot",
	Long: `Train builds a fresh model, feeds it every corpus file in order and
writes the calibrated result to --out. Alphabet, order and calibration
samples come from --config (TOML); unset fields use the embedded defaults.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().String("config", "", "TOML training config")
	trainCmd.Flags().String("out", "gibberish.snap", "snapshot output path")
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg, err := loadTrainConfig(mustString(cmd, "config"))
	if err != nil {
		return err
	}

	opts, order, err := cfg.options()
	if err != nil {
		return err
	}

	s, err := gibberish.NewScorer(order, opts...)
	if err != nil {
		return err
	}

	var total int
	for _, path := range args {
		text, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("corpus %s: %w", path, err)
		}
		s.TrainWithText(string(text))
		total += len(text)
	}

	out := mustString(cmd, "out")
	if err := s.Save(out); err != nil {
		return err
	}

	c := s.CutoffScores()
	fmt.Fprintf(cmd.OutOrStdout(),
		"trained %s model on %d bytes across %d file(s)\ncutoffs: strict=%.6f avg=%.6f loose=%.6f\nwrote %s\n",
		order, total, len(args), c.Strict, c.Avg, c.Loose, out)

	return nil
}
