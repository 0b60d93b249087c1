package words

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNormalizesAndFilters(t *testing.T) {
	set, err := Load([]string{
		" crate ",
		"CATER",
		"crate", // duplicate after normalization
		"cat",   // wrong length
		"toolong",
		"cr4te", // non-letter
		"",
	}, 5)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
	for _, w := range []string{"CRATE", "CATER"} {
		if !set.Contains(w) {
			t.Errorf("Contains(%s) = false, want true", w)
		}
	}
	if set.Contains("CAT") {
		t.Error("Contains(CAT) = true for filtered word")
	}
	if set.WordLength() != 5 {
		t.Errorf("WordLength() = %d, want 5", set.WordLength())
	}
}

func TestLoadEmpty(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"nil input", nil},
		{"only malformed lines", []string{"abc", "abcdef", "12345", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.lines, 5); !errors.Is(err, ErrEmptyList) {
				t.Errorf("Load() error = %v, want ErrEmptyList", err)
			}
		})
	}
}

func TestDrawSingleWord(t *testing.T) {
	set, err := Load([]string{"crate"}, 5)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		w, err := set.Draw(rng)
		if err != nil {
			t.Fatalf("Draw() failed: %v", err)
		}
		if w != "CRATE" {
			t.Errorf("Draw() = %q, want CRATE", w)
		}
	}
}

func TestDrawDeterministicWithSeed(t *testing.T) {
	lines := []string{"crate", "cater", "trace", "react", "hound", "among"}

	set, err := Load(lines, 5)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	first, err := set.Draw(rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}
	second, err := set.Draw(rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	if first != second {
		t.Errorf("seeded draws differ: %q vs %q", first, second)
	}
	if !set.Contains(first) {
		t.Errorf("Draw() returned %q, not a member of the set", first)
	}
}

func TestDrawEmptySet(t *testing.T) {
	var s *Set
	if _, err := s.Draw(rand.New(rand.NewSource(1))); !errors.Is(err, ErrEmptyList) {
		t.Errorf("Draw() on nil set error = %v, want ErrEmptyList", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "crate\ncater\nnotfiveletters\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	set, err := LoadFile(path, 5)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if set.Len() != 2 {
		t.Errorf("Len() = %d, want 2", set.Len())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt"), 5); err == nil {
		t.Error("LoadFile() on missing file succeeded")
	}
}

func TestDefaultList(t *testing.T) {
	set, err := Default(5)
	if err != nil {
		t.Fatalf("Default() failed: %v", err)
	}

	if set.Len() == 0 {
		t.Fatal("embedded word list is empty")
	}
	for _, w := range set.Words() {
		if len(w) != 5 {
			t.Errorf("embedded word %q has length %d", w, len(w))
		}
		for i := 0; i < len(w); i++ {
			if w[i] < 'A' || w[i] > 'Z' {
				t.Errorf("embedded word %q contains non-uppercase letter", w)
			}
		}
	}

	// Words the game's own tests rely on.
	for _, w := range []string{"CRATE", "CATER", "HOUND", "AMONG", "TRAIT"} {
		if !set.Contains(w) {
			t.Errorf("embedded list missing %s", w)
		}
	}
}

func TestWordsReturnsCopy(t *testing.T) {
	set, err := Load([]string{"crate", "cater"}, 5)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	ws := set.Words()
	ws[0] = "XXXXX"

	if got := set.Words()[0]; got == "XXXXX" {
		t.Error("mutating Words() result affected the set")
	}
}
