package game

import (
	"reflect"
	"strings"
	"testing"
)

func states(scored ScoredWord) []LetterState {
	out := make([]LetterState, len(scored))
	for i, t := range scored {
		out[i] = t.State
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		guess  string
		want   []LetterState
	}{
		{
			name:   "anagram with one positional match",
			answer: "CRATE",
			guess:  "CATER",
			want:   []LetterState{Correct, Present, Present, Present, Present},
		},
		{
			name:   "mixed hit and presence",
			answer: "HOUND",
			guess:  "AMONG",
			want:   []LetterState{Absent, Absent, Present, Correct, Absent},
		},
		{
			name:   "duplicates exhausted by positional matches",
			answer: "TRAIT",
			guess:  "TXTXT",
			want:   []LetterState{Correct, Absent, Absent, Absent, Correct},
		},
		{
			name:   "leftmost duplicate claims the remaining count",
			answer: "TRAIT",
			guess:  "TXTTX",
			want:   []LetterState{Correct, Absent, Present, Absent, Absent},
		},
		{
			name:   "guess equals answer",
			answer: "DEALT",
			guess:  "DEALT",
			want:   []LetterState{Correct, Correct, Correct, Correct, Correct},
		},
		{
			name:   "no letters shared",
			answer: "CRATE",
			guess:  "BOUND",
			want:   []LetterState{Absent, Absent, Absent, Absent, Absent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := states(Evaluate(tt.guess, tt.answer))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Evaluate(%s, %s) = %v, want %v", tt.guess, tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	first := Evaluate("CATER", "CRATE")
	second := Evaluate("CATER", "CRATE")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated evaluation differs: %v vs %v", first, second)
	}
}

func TestEvaluateNeverOvercounts(t *testing.T) {
	// For every letter, Correct+Present tiles must not exceed the
	// letter's occurrences in the answer.
	pairs := []struct{ guess, answer string }{
		{"TXTTX", "TRAIT"},
		{"AAAAA", "ABBBA"},
		{"ABABA", "BABAB"},
		{"CATER", "CRATE"},
		{"EEEEE", "CRATE"},
	}

	for _, p := range pairs {
		scored := Evaluate(p.guess, p.answer)

		var claimed, available [26]int
		for _, tile := range scored {
			if tile.State == Correct || tile.State == Present {
				claimed[tile.Letter-'A']++
			}
		}
		for i := 0; i < len(p.answer); i++ {
			available[p.answer[i]-'A']++
		}

		for c := 0; c < 26; c++ {
			if claimed[c] > available[c] {
				t.Errorf("Evaluate(%s, %s): letter %c claimed %d times but occurs %d times",
					p.guess, p.answer, 'A'+c, claimed[c], available[c])
			}
		}
	}
}

func TestScoredWordHelpers(t *testing.T) {
	scored := Evaluate("CRATE", "CRATE")

	if !scored.AllCorrect() {
		t.Error("expected AllCorrect for guess == answer")
	}
	if got := scored.Word(); got != "CRATE" {
		t.Errorf("Word() = %q, want %q", got, "CRATE")
	}

	scored = Evaluate("CATER", "CRATE")
	if scored.AllCorrect() {
		t.Error("AllCorrect must be false when any tile is not Correct")
	}
}

func TestLetterStateRank(t *testing.T) {
	// The severity order is an explicit contract, not declaration order.
	if !(Correct.Rank() > Present.Rank() &&
		Present.Rank() > Absent.Rank() &&
		Absent.Rank() > Unused.Rank()) {
		t.Errorf("rank order violated: correct=%d present=%d absent=%d unused=%d",
			Correct.Rank(), Present.Rank(), Absent.Rank(), Unused.Rank())
	}
}

func TestLetterStateString(t *testing.T) {
	for _, s := range []LetterState{Unused, Absent, Present, Correct} {
		if strings.TrimSpace(s.String()) == "" {
			t.Errorf("LetterState(%d) has empty String()", s)
		}
	}
}
