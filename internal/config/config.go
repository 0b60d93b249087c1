// Package config provides YAML-based configuration loading for the
// wordle platform.
package config

import "fmt"

// Config is the top-level configuration.
type Config struct {
	Game   GameConfig   `yaml:"game"`
	Words  WordsConfig  `yaml:"words"`
	Lookup LookupConfig `yaml:"lookup"`
}

// GameConfig defines the rules of a session.
type GameConfig struct {
	WordLength int `yaml:"word_length"`
	MaxRounds  int `yaml:"max_rounds"`
}

// WordsConfig selects the word list. An empty path means the embedded
// default list.
type WordsConfig struct {
	Path string `yaml:"path"`
}

// LookupConfig controls the post-game definition lookup.
type LookupConfig struct {
	Enabled        bool   `yaml:"enabled"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Game.WordLength < 2 || c.Game.WordLength > 10 {
		return fmt.Errorf("config: word_length must be between 2 and 10, got %d", c.Game.WordLength)
	}
	if c.Game.MaxRounds < 1 {
		return fmt.Errorf("config: max_rounds must be at least 1, got %d", c.Game.MaxRounds)
	}
	if c.Lookup.Enabled && c.Lookup.BaseURL == "" {
		return fmt.Errorf("config: lookup.base_url must be set when lookup is enabled")
	}
	return nil
}
