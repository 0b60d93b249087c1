package game

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-wordle/internal/words"
)

// DefaultMaxRounds is the classic guess limit.
const DefaultMaxRounds = 6

// State is the lifecycle phase of a session.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Terminal reports whether the state accepts no further guesses.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Session is one game of Wordle: a hidden answer, a bounded round
// counter, the guess history, and the accumulated keyboard hints.
// A session is owned by a single caller; every Submit/Restart call is a
// complete transition with no partial updates observable in between.
type Session struct {
	set *words.Set
	rng *rand.Rand

	maxRounds int
	answer    string
	round     int
	history   []ScoredWord
	keyboard  Keyboard
	state     State
}

// Option configures a new session.
type Option func(*Session)

// WithMaxRounds overrides the default guess limit.
func WithMaxRounds(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxRounds = n
		}
	}
}

// NewSession draws an answer from the word set and starts a game at
// round 1. The rng is injected so tests can seed it. Fails with
// words.ErrEmptyList when no answer can be drawn; no partial session is
// returned.
func NewSession(set *words.Set, rng *rand.Rand, opts ...Option) (*Session, error) {
	s := &Session{
		set:       set,
		rng:       rng,
		maxRounds: DefaultMaxRounds,
		round:     1,
		state:     StatePlaying,
	}
	for _, opt := range opts {
		opt(s)
	}

	answer, err := set.Draw(rng)
	if err != nil {
		return nil, err
	}
	s.answer = answer
	return s, nil
}

// Submit validates and scores one guess.
//
// Validation order: ASCII, trimmed length, word-list membership. A
// rejected guess leaves the session exactly as it was. On success the
// scored guess is appended to history, merged into the keyboard, and
// the round advances: all-Correct wins, exhausting the round limit
// loses, anything else keeps playing. Submitting after a terminal state
// returns ErrGameOver.
func (s *Session) Submit(raw string) (ScoredWord, error) {
	if s.state.Terminal() {
		return nil, ErrGameOver
	}

	guess := strings.TrimSpace(raw)
	for i := 0; i < len(guess); i++ {
		if guess[i] >= 0x80 {
			return nil, ErrNotASCII
		}
	}
	if len(guess) != s.set.WordLength() {
		return nil, ErrWrongLength
	}
	guess = strings.ToUpper(guess)
	if !s.set.Contains(guess) {
		return nil, ErrNotInWordList
	}

	scored := Evaluate(guess, s.answer)
	s.history = append(s.history, scored)
	s.keyboard.Merge(scored)
	s.round++

	switch {
	case scored.AllCorrect():
		s.state = StateWon
	case s.round > s.maxRounds:
		s.state = StateLost
	}

	return scored, nil
}

// Restart draws a fresh answer and resets round, history, keyboard and
// state. Valid from any state.
func (s *Session) Restart() error {
	answer, err := s.set.Draw(s.rng)
	if err != nil {
		return err
	}
	s.answer = answer
	s.round = 1
	s.history = nil
	s.keyboard = Keyboard{}
	s.state = StatePlaying
	return nil
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Round returns the 1-based current round. While playing it equals
// len(History())+1.
func (s *Session) Round() int { return s.round }

// MaxRounds returns the configured guess limit.
func (s *Session) MaxRounds() int { return s.maxRounds }

// WordLength returns the letter count of every word in this game.
func (s *Session) WordLength() int { return s.set.WordLength() }

// History returns the scored guesses in submission order. The returned
// slice is a copy; past guesses are never mutated.
func (s *Session) History() []ScoredWord {
	out := make([]ScoredWord, len(s.history))
	copy(out, s.history)
	return out
}

// Keyboard returns the accumulated per-letter hints.
func (s *Session) Keyboard() Keyboard { return s.keyboard }

// Answer reveals the hidden word, but only once the game is over.
func (s *Session) Answer() (string, bool) {
	if !s.state.Terminal() {
		return "", false
	}
	return s.answer, true
}
