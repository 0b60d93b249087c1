package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-wordle/internal/config"
	"github.com/vovakirdan/tui-wordle/internal/define"
	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
	"github.com/vovakirdan/tui-wordle/internal/storage"
	"github.com/vovakirdan/tui-wordle/internal/words"
)

var flagDebug bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game against a randomly drawn answer.

Controls:
  A-Z        - Type a letter
  Backspace  - Delete a letter
  Enter      - Submit guess
  Tab        - New game
  Esc/Ctrl+C - Quit

Examples:
  wordle play
  wordle play --seed 42
  wordle play --words ./my-words.txt
  wordle play --config ./my-wordle.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write a debug log to ~/.wordle/debug.log")
}

func runPlay(cmd *cobra.Command, args []string) {
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

	// Use time-based seed if not specified
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	session, err := game.NewSession(set, rng, game.WithMaxRounds(cfg.Game.MaxRounds))
	if err != nil {
		logger.Fatal("could not start game", "error", err)
	}

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var definer *define.Client
	if cfg.Lookup.Enabled {
		definer = define.NewClient(cfg.Lookup.BaseURL, time.Duration(cfg.Lookup.TimeoutSeconds)*time.Second)
	}

	debugLogger, closeLog := openDebugLogger()

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(session, store, definer, debugLogger, width, height)

	if closeLog != nil {
		closeLog()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Fatal("error running game", "error", runErr)
	}
}

// loadWordSet resolves the word list: --words flag, then the configured
// path, then the embedded default list.
func loadWordSet(cfg config.Config) (*words.Set, error) {
	switch {
	case flagWords != "":
		return words.LoadFile(flagWords, cfg.Game.WordLength)
	case cfg.Words.Path != "":
		return words.LoadFile(cfg.Words.Path, cfg.Game.WordLength)
	default:
		return words.Default(cfg.Game.WordLength)
	}
}

// openDebugLogger opens ~/.wordle/debug.log when --debug is set.
// Returns a nil logger otherwise.
func openDebugLogger() (*log.Logger, func()) {
	if !flagDebug {
		return nil, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("could not resolve home directory for debug log", "error", err)
		return nil, nil
	}
	dir := filepath.Join(home, ".wordle")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn("could not create debug log directory", "error", err)
		return nil, nil
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		logger.Warn("could not open debug log", "error", err)
		return nil, nil
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "wordle",
		Level:           log.DebugLevel,
	})
	return l, func() { f.Close() }
}
