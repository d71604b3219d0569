package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score [text...]",
	Short: "Print the mean transition probability of each text",
	Long: `Score prints one line per input: the score in [0,1] followed by the
text. With no arguments, lines are read from stdin.`,
	RunE: runScore,
}

func runScore(cmd *cobra.Command, args []string) error {
	s, err := loadScorer(cmd)
	if err != nil {
		return err
	}

	emit := func(text string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%.6f\t%s\n", s.Score(text), text)
	}

	if len(args) > 0 {
		for _, text := range args {
			emit(text)
		}

		return nil
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		emit(sc.Text())
	}

	return sc.Err()
}
