package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/troyfeng116/gibberish-scorer/alphabet"
	"github.com/troyfeng116/gibberish-scorer/corpus"
	"github.com/troyfeng116/gibberish-scorer/ngram"
)

// trainConfig is the TOML shape "gibberscore train --config" accepts.
// Every field is optional; zero values fall back to the embedded defaults.
type trainConfig struct {
	Order         string   `toml:"order"`
	CaseSensitive bool     `toml:"case_sensitive"`
	ExtraChars    string   `toml:"extra_chars"`
	GoodSamples   []string `toml:"good_samples"`
	BadSamples    []string `toml:"bad_samples"`
}

func loadTrainConfig(path string) (trainConfig, error) {
	var cfg trainConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// options translates the file config into model options, falling back to
// the embedded sample sets when the config names none.
func (c trainConfig) options() ([]ngram.Option, ngram.Order, error) {
	order := ngram.Bigram
	if c.Order != "" {
		var err error
		if order, err = parseOrder(c.Order); err != nil {
			return nil, 0, err
		}
	}

	var opts []ngram.Option
	if c.CaseSensitive {
		opts = append(opts, ngram.WithCaseSensitive())
	}
	if c.ExtraChars != "" {
		alphaOpts := []alphabet.Option{alphabet.WithExtra(c.ExtraChars)}
		if c.CaseSensitive {
			alphaOpts = append(alphaOpts, alphabet.WithUppercase())
		}
		opts = append(opts, ngram.WithAlphabet(alphabet.Default(alphaOpts...)))
	}

	good, bad := c.GoodSamples, c.BadSamples
	if len(good) == 0 {
		good = corpus.GoodSamples()
	}
	if len(bad) == 0 {
		bad = corpus.BadSamples()
	}
	opts = append(opts, ngram.WithSamples(good, bad))

	return opts, order, nil
}
