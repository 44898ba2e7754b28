// Package config loads the .prosemeter.yml configuration: analysis options,
// default metric selection, file ignore patterns, and wordlist overrides.
package config

import (
	"fmt"

	"github.com/jeduden/prosemeter/internal/metrics"
	"github.com/jeduden/prosemeter/internal/wordlist"
)

// Config is the top-level configuration.
type Config struct {
	// TopWords sets the word-frequency table size. Zero means the
	// built-in default.
	TopWords int `yaml:"top-words"`
	// Stem groups inflected forms in the frequency table.
	Stem bool `yaml:"stem"`
	// Metrics selects the default metrics by name or ID. Empty means
	// the registry defaults.
	Metrics []string `yaml:"metrics"`
	// Ignore lists glob patterns for files to skip during discovery.
	Ignore []string `yaml:"ignore"`
	// Wordlists maps a list name (stopwords, familiar, weakwords,
	// participles, abbreviations, complex-exceptions, ly-exceptions)
	// to a replacement file path.
	Wordlists map[string]string `yaml:"wordlists"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{}
}

// Validate checks values that yaml decoding cannot.
func (c *Config) Validate() error {
	if c.TopWords < 0 {
		return fmt.Errorf("top-words must not be negative, got %d", c.TopWords)
	}
	if _, err := metrics.Resolve(c.Metrics); err != nil {
		return err
	}
	// Load rejects unknown list names; checking here surfaces the error
	// at config time with the file path attached by the caller.
	if _, err := wordlist.Load(c.Wordlists); err != nil {
		return err
	}
	return nil
}
