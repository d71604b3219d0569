package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words [text...]",
	Short: "Score text word by word, highlighting gibberish tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWords,
}

func init() {
	wordsCmd.Flags().String("strictness", "avg", "classification threshold (strict|avg|loose)")
}

func runWords(cmd *cobra.Command, args []string) error {
	strictness, err := parseStrictness(mustString(cmd, "strictness"))
	if err != nil {
		return err
	}

	s, err := loadScorer(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, ws := range s.WordAnalysis(strings.Join(args, " "), strictness) {
		word := ws.Word
		if ws.Gibberish {
			word = color.RedString(word)
		}
		fmt.Fprintf(out, "%.6f\t%s\n", ws.Score, word)
	}

	return nil
}
