// wordle is a terminal word-guessing game.
//
// Usage:
//
//	wordle play              - Play a game
//	wordle stats             - Show win statistics and guess distribution
//	wordle words             - Inspect the active word list
//
// Global flags:
//
//	--config <path>  - Custom config YAML
//	--words <path>   - Custom word list (one word per line)
//	--db <path>      - Results database path (default: ~/.wordle/wordle.db)
//	--seed <value>   - RNG seed for reproducible answers (0 = random)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagWords  string
	flagDBPath string
	flagSeed   int64

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "wordle",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wordle",
	Short: "Wordle - guess the hidden word in your terminal",
	Long: `Wordle is a terminal word-guessing game: six tries to find a hidden
five-letter word, with per-letter feedback and keyboard hints.

Available commands:
  play     - Start a game
  stats    - View win statistics and guess distribution
  words    - Inspect the active word list

Examples:
  wordle play
  wordle play --words ./my-words.txt
  wordle stats
  wordle words --check crane`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagWords, "words", "", "Path to custom word list")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.wordle/wordle.db", "Path to results database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(wordsCmd)
}
