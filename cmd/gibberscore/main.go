// Command gibberscore trains, inspects and applies gibberish-scoring
// models from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gibberish "github.com/troyfeng116/gibberish-scorer"
	"github.com/troyfeng116/gibberish-scorer/ngram"
)

var rootCmd = &cobra.Command{
	Use:   "gibberscore",
	Short: "Score text for gibberishness with character n-gram models",
	Long: `gibberscore models English as a Markov process over character bigrams or
trigrams and classifies text by its average transition probability.

Without --model it uses a scorer trained on the embedded English corpus;
point --model at a snapshot produced by "gibberscore train" to use your own.`,
}

func main() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(cutoffsCmd)

	rootCmd.PersistentFlags().String("model", "", "path to a model snapshot (default: embedded English model)")
	rootCmd.PersistentFlags().String("order", "bigram", "n-gram order for the embedded model (bigram|trigram)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScorer resolves the scorer every read-only command works against:
// the --model snapshot when given, else the embedded default.
func loadScorer(cmd *cobra.Command) (*gibberish.Scorer, error) {
	path, _ := cmd.Flags().GetString("model")
	if path != "" {
		return gibberish.FromSnapshot(path)
	}

	order, err := parseOrder(mustString(cmd, "order"))
	if err != nil {
		return nil, err
	}

	return gibberish.NewDefaultScorer(order)
}

func parseOrder(s string) (ngram.Order, error) {
	switch s {
	case "bigram":
		return ngram.Bigram, nil
	case "trigram":
		return ngram.Trigram, nil
	default:
		return 0, fmt.Errorf("unknown order %q (want bigram or trigram)", s)
	}
}

func parseStrictness(s string) (ngram.Strictness, error) {
	switch s {
	case "strict":
		return ngram.StrictnessStrict, nil
	case "avg":
		return ngram.StrictnessAvg, nil
	case "loose":
		return ngram.StrictnessLoose, nil
	default:
		return 0, fmt.Errorf("unknown strictness %q (want strict, avg or loose)", s)
	}
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)

	return v
}
