package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

var flagReset bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show win statistics and guess distribution",
	Long: `Display aggregated results of finished games: games played, win
rate, streaks, and how many guesses wins took.

Examples:
  wordle stats
  wordle stats --db ./wordle.db
  wordle stats --reset`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete all recorded results")
}

func runStats(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("could not load config", "error", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("could not open results database", "error", err)
	}
	defer store.Close()

	if flagReset {
		if err := store.Clear(); err != nil {
			logger.Fatal("could not clear results", "error", err)
		}
		fmt.Println("All recorded results deleted.")
		return
	}

	stats, err := store.GetStats()
	if err != nil {
		logger.Fatal("could not read statistics", "error", err)
	}

	fmt.Println("Wordle Statistics")
	fmt.Println()

	if stats.Played == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'wordle play' to record your first game!")
		return
	}

	fmt.Printf("  %-16s %d\n", "Played", stats.Played)
	fmt.Printf("  %-16s %d\n", "Won", stats.Wins)
	fmt.Printf("  %-16s %.0f%%\n", "Win rate", stats.WinRate*100)
	fmt.Printf("  %-16s %d\n", "Current streak", stats.CurrentStreak)
	fmt.Printf("  %-16s %d\n", "Best streak", stats.BestStreak)
	fmt.Println()

	dist, err := store.Distribution(cfg.Game.MaxRounds)
	if err != nil {
		logger.Fatal("could not read guess distribution", "error", err)
	}

	maxCount := 0
	for _, c := range dist {
		if c > maxCount {
			maxCount = c
		}
	}

	fmt.Println("Guess distribution:")
	for i, count := range dist {
		bar := ""
		if maxCount > 0 {
			bar = strings.Repeat("#", count*30/maxCount)
		}
		fmt.Printf("  %d %-30s %d\n", i+1, bar, count)
	}

	recent, err := store.RecentResults(5)
	if err != nil {
		logger.Fatal("could not read recent games", "error", err)
	}
	if len(recent) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recent games:")
	for _, r := range recent {
		outcome := "lost"
		if r.Won {
			outcome = fmt.Sprintf("won in %d", r.Rounds)
		}
		fmt.Printf("  %s  %-10s %s\n", r.CreatedAt.Format("2006-01-02 15:04"), outcome, r.Answer)
	}
}
