package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [text...]",
	Short: "Classify each text as gibberish or clean",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("strictness", "avg", "classification threshold (strict|avg|loose)")
}

var (
	verdictBad = color.New(color.FgRed, color.Bold)
	verdictOK  = color.New(color.FgGreen)
)

func runCheck(cmd *cobra.Command, args []string) error {
	strictness, err := parseStrictness(mustString(cmd, "strictness"))
	if err != nil {
		return err
	}

	s, err := loadScorer(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, text := range args {
		score := s.Score(text)
		if s.IsGibberish(text, strictness) {
			verdictBad.Fprintf(out, "GIBBERISH")
		} else {
			verdictOK.Fprintf(out, "ok")
		}
		fmt.Fprintf(out, "\t%.6f\t%s\n", score, text)
	}

	return nil
}
