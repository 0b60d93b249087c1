package game

import "errors"

// Validation and lifecycle errors returned by Session.Submit. All of
// them leave the session untouched; the caller re-prompts.
var (
	ErrNotASCII      = errors.New("guess contains non-ASCII characters")
	ErrWrongLength   = errors.New("guess has the wrong length")
	ErrNotInWordList = errors.New("guess is not in the word list")
	ErrGameOver      = errors.New("game is already over")
)
