package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
)

var flagCheck string

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Inspect the active word list",
	Long: `Show where the active word list comes from and how many words it
holds, or check whether a specific word would be accepted as a guess.

Examples:
  wordle words
  wordle words --words ./my-words.txt
  wordle words --check crane`,
	Run: runWords,
}

func init() {
	wordsCmd.Flags().StringVar(&flagCheck, "check", "", "Check whether a word is in the list")
}

func runWords(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	set, err := loadWordSet(cfg)
	if err != nil {
		logger.Fatal("could not load word list", "error", err)
	}

	source := "embedded default list"
	switch {
	case flagWords != "":
		source = flagWords
	case cfg.Words.Path != "":
		source = cfg.Words.Path
	}

	if flagCheck != "" {
		word := strings.ToUpper(strings.TrimSpace(flagCheck))
		if set.Contains(word) {
			fmt.Printf("%s is a valid guess.\n", word)
		} else {
			fmt.Printf("%s is not in the word list.\n", word)
		}
		return
	}

	fmt.Printf("Source:      %s\n", source)
	fmt.Printf("Word length: %d\n", set.WordLength())
	fmt.Printf("Words:       %d\n", set.Len())

	all := set.Words()
	if len(all) > 0 {
		n := len(all)
		if n > 5 {
			n = 5
		}
		fmt.Printf("Sample:      %s\n", strings.Join(all[:n], ", "))
	}
}
