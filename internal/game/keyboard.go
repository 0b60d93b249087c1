package game

// Keyboard tracks the best state seen for each letter A-Z across all
// guesses of a session. The zero value has every letter Unused.
type Keyboard [26]LetterState

// Merge folds a scored guess into the keyboard. A letter's state only
// changes when the new observation outranks the stored one, so hints
// are monotonic: a Correct letter stays Correct even if a later guess
// scores a duplicate of it Absent.
func (k *Keyboard) Merge(scored ScoredWord) {
	for _, t := range scored {
		if t.Letter < 'A' || t.Letter > 'Z' {
			continue
		}
		i := t.Letter - 'A'
		if t.State.Rank() > k[i].Rank() {
			k[i] = t.State
		}
	}
}

// State returns the best state seen for the given uppercase letter.
// Letters outside A-Z report Unused.
func (k Keyboard) State(letter byte) LetterState {
	if letter < 'A' || letter > 'Z' {
		return Unused
	}
	return k[letter-'A']
}
