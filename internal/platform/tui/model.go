// Package tui provides the Bubble Tea integration for the wordle
// platform. It owns the typing buffer and the last validation message;
// the game rules live in the game package.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-wordle/internal/define"
	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/storage"
)

// definitionMsg carries the result of the post-game definition lookup.
// A nil definition means the lookup failed; the game is unaffected
// either way.
type definitionMsg struct {
	def *define.Definition
}

// Model is the Bubble Tea model for a wordle session.
type Model struct {
	session *game.Session
	store   *storage.Store // nil when the results database is unavailable
	definer *define.Client // nil when lookup is disabled
	logger  *log.Logger    // nil unless --debug

	keys KeyMap
	help help.Model

	input      string
	errMsg     string
	definition *define.Definition

	width      int
	height     int
	endHandled bool // result saved and lookup fired for current game
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *game.Session, store *storage.Store, definer *define.Client, logger *log.Logger, width, height int) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		session: session,
		store:   store,
		definer: definer,
		logger:  logger,
		keys:    DefaultKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case definitionMsg:
		m.definition = msg.def
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Delete):
		if len(m.input) > 0 && m.session.State() == game.StatePlaying {
			m.input = m.input[:len(m.input)-1]
		}
		return m, nil
	}

	// Letter input
	if m.session.State() != game.StatePlaying {
		return m, nil
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		r := msg.Runes[0]
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r >= 'A' && r <= 'Z' && len(m.input) < m.session.WordLength() {
			m.input += string(r)
		}
	}

	return m, nil
}

// restart begins a new game with a fresh answer.
func (m Model) restart() (tea.Model, tea.Cmd) {
	if err := m.session.Restart(); err != nil {
		// Cannot happen with a non-empty word set, but surface it anyway.
		m.errMsg = err.Error()
		return m, nil
	}
	m.input = ""
	m.errMsg = ""
	m.definition = nil
	m.endHandled = false
	if m.logger != nil {
		m.logger.Debug("game restarted")
	}
	return m, nil
}

// submit hands the typing buffer to the session.
func (m Model) submit() (tea.Model, tea.Cmd) {
	scored, err := m.session.Submit(m.input)
	if err != nil {
		m.errMsg = submitErrorMessage(err, m.session.WordLength())
		return m, nil
	}

	m.input = ""
	m.errMsg = ""
	if m.logger != nil {
		m.logger.Debug("guess scored",
			"word", scored.Word(),
			"round", m.session.Round(),
			"state", string(m.session.State()),
		)
	}

	if m.session.State().Terminal() {
		return m, m.handleGameEnd()
	}
	return m, nil
}

// handleGameEnd saves the result (best effort) and kicks off the
// definition lookup. Both run at most once per game.
func (m *Model) handleGameEnd() tea.Cmd {
	if m.endHandled {
		return nil
	}
	m.endHandled = true

	answer, _ := m.session.Answer()
	won := m.session.State() == game.StateWon
	rounds := len(m.session.History())

	if m.store != nil {
		if _, err := m.store.SaveResult(won, rounds, m.session.WordLength(), answer); err != nil && m.logger != nil {
			m.logger.Warn("could not save result", "error", err)
		}
	}

	if m.definer == nil {
		return nil
	}
	definer := m.definer
	logger := m.logger
	return func() tea.Msg {
		def, err := definer.Lookup(answer)
		if err != nil {
			if logger != nil {
				logger.Warn("definition lookup failed", "word", answer, "error", err)
			}
			return definitionMsg{def: nil}
		}
		return definitionMsg{def: def}
	}
}

// submitErrorMessage maps a session error to a short player-facing line.
func submitErrorMessage(err error, wordLen int) string {
	switch {
	case errors.Is(err, game.ErrNotASCII):
		return "letters A-Z only"
	case errors.Is(err, game.ErrWrongLength):
		return wordLengthMessage(wordLen)
	case errors.Is(err, game.ErrNotInWordList):
		return "not in word list"
	case errors.Is(err, game.ErrGameOver):
		return "game over - press tab for a new game"
	default:
		return err.Error()
	}
}

// Run starts the Bubble Tea program for the given session.
func Run(session *game.Session, store *storage.Store, definer *define.Client, logger *log.Logger, width, height int) error {
	model := NewModel(session, store, definer, logger, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	start := time.Now()
	_, err := p.Run()
	if logger != nil {
		logger.Debug("session ended", "duration", time.Since(start))
	}
	return err
}
