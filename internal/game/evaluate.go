package game

// Evaluate scores a guess against the answer using the standard two-pass
// algorithm. Both words must be uppercase A-Z and the same length; the
// session validates input before calling.
//
// Pass 1 claims every positional match and counts the remaining answer
// letters. Pass 2 walks left to right and marks a tile Present only
// while its letter still has remaining count, so the number of
// Correct+Present tiles for a letter never exceeds its occurrences in
// the answer. Leftmost duplicates win; the rest come out Absent.
func Evaluate(guess, answer string) ScoredWord {
	scored := make(ScoredWord, len(guess))
	var remaining [26]int

	for i := 0; i < len(guess); i++ {
		scored[i].Letter = guess[i]
		if guess[i] == answer[i] {
			scored[i].State = Correct
		} else {
			remaining[answer[i]-'A']++
		}
	}

	for i := range scored {
		if scored[i].State == Correct {
			continue
		}
		j := scored[i].Letter - 'A'
		if remaining[j] > 0 {
			scored[i].State = Present
			remaining[j]--
		} else {
			scored[i].State = Absent
		}
	}

	return scored
}
