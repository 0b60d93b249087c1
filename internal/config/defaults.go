package config

import (
	_ "embed"
)

//go:embed defaults/wordle.yaml
var defaultWordleYAML []byte

// DefaultConfig returns the default wordle configuration.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			WordLength: 5,
			MaxRounds:  6,
		},
		Words: WordsConfig{
			Path: "",
		},
		Lookup: LookupConfig{
			Enabled:        true,
			BaseURL:        "https://api.dictionaryapi.dev/api/v2/entries/en",
			TimeoutSeconds: 5,
		},
	}
}
