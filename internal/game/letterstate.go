// Package game implements the Wordle rules: guess evaluation, keyboard
// hint aggregation, and the round/lifecycle state machine for a single
// session. The package contains pure logic with no external dependencies;
// the platform handles input, rendering, and persistence.
package game

// LetterState classifies a single letter of a scored guess, or the best
// knowledge about a keyboard letter accumulated across guesses.
type LetterState int

const (
	// Unused means the letter has not appeared in any guess yet.
	Unused LetterState = iota
	// Absent means the letter does not occur in the answer (or all of
	// its occurrences are already claimed by other tiles).
	Absent
	// Present means the letter occurs in the answer at a different position.
	Present
	// Correct means the letter is in the right position.
	Correct
)

// Rank returns the information severity of a state: Correct=3,
// Present=2, Absent=1, Unused=0. Keyboard merging compares ranks, never
// raw enum values, so the ordering stays explicit.
func (s LetterState) Rank() int {
	switch s {
	case Correct:
		return 3
	case Present:
		return 2
	case Absent:
		return 1
	default:
		return 0
	}
}

func (s LetterState) String() string {
	switch s {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "unused"
	}
}

// Tile is one letter of a scored guess. Tiles are immutable once
// produced by Evaluate.
type Tile struct {
	Letter byte
	State  LetterState
}

// ScoredWord is a guess with per-letter evaluation results.
type ScoredWord []Tile

// Word returns the plain letters of the scored guess.
func (w ScoredWord) Word() string {
	b := make([]byte, len(w))
	for i, t := range w {
		b[i] = t.Letter
	}
	return string(b)
}

// AllCorrect reports whether every tile is Correct, i.e. the guess is
// the answer.
func (w ScoredWord) AllCorrect() bool {
	for _, t := range w {
		if t.State != Correct {
			return false
		}
	}
	return len(w) > 0
}
