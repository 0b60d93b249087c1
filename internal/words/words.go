// Package words manages the candidate word list: loading and
// normalizing raw lines into a fixed-length uppercase set, and drawing
// a random answer from it.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
)

// ErrEmptyList is fatal: with no candidate words there is nothing to
// answer with and no session can be created.
var ErrEmptyList = errors.New("words: empty word list")

// Set is an immutable collection of uppercase words of one length.
type Set struct {
	length int
	index  map[string]struct{}
	sorted []string
}

// Load builds a set from raw lines. Lines are trimmed and uppercased;
// lines of the wrong length or with non-letter characters are the
// loader's concern and are silently skipped. Duplicates collapse.
// Returns ErrEmptyList if nothing usable remains.
func Load(lines []string, length int) (*Set, error) {
	index := make(map[string]struct{}, len(lines))
	for _, line := range lines {
		w := strings.ToUpper(strings.TrimSpace(line))
		if len(w) != length || !isUpperAlpha(w) {
			continue
		}
		index[w] = struct{}{}
	}
	if len(index) == 0 {
		return nil, ErrEmptyList
	}

	// A sorted slice gives Draw a stable order, so a seeded rng is
	// fully deterministic regardless of map iteration.
	sorted := make([]string, 0, len(index))
	for w := range index {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)

	return &Set{length: length, index: index, sorted: sorted}, nil
}

// LoadFile reads one word per line from the given path.
func LoadFile(path string, length int) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: cannot open %s: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("words: cannot read %s: %w", path, err)
	}

	return Load(lines, length)
}

// Default returns the embedded word list filtered to the given length.
func Default(length int) (*Set, error) {
	return Load(strings.Split(string(defaultWords), "\n"), length)
}

// Draw selects one word uniformly at random. The emptiness check runs
// before the rng is consumed.
func (s *Set) Draw(rng *rand.Rand) (string, error) {
	if s == nil || len(s.sorted) == 0 {
		return "", ErrEmptyList
	}
	return s.sorted[rng.Intn(len(s.sorted))], nil
}

// Contains reports membership of an uppercase word.
func (s *Set) Contains(word string) bool {
	_, ok := s.index[word]
	return ok
}

// Len returns the number of words in the set.
func (s *Set) Len() int { return len(s.sorted) }

// WordLength returns the uniform letter count of the set.
func (s *Set) WordLength() int { return s.length }

// Words returns the words in sorted order. The slice is a copy.
func (s *Set) Words() []string {
	out := make([]string, len(s.sorted))
	copy(out, s.sorted)
	return out
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
