package textsource

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPoolNextReturnsMember(t *testing.T) {
	pool := NewPool([]string{"one", "two", "three"}, 42)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		text, err := pool.Next()
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		seen[text] = true
	}
	for text := range seen {
		if text != "one" && text != "two" && text != "three" {
			t.Fatalf("unexpected passage %q", text)
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected every passage to be picked, got %v", seen)
	}
}

func TestPoolEmpty(t *testing.T) {
	if _, err := NewPool(nil, 1).Next(); !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}
}

func TestDefaultPassagesNonEmpty(t *testing.T) {
	if len(DefaultPassages) == 0 {
		t.Fatalf("expected built-in passages")
	}
	for i, p := range DefaultPassages {
		if strings.TrimSpace(p) == "" {
			t.Fatalf("passage %d is empty", i)
		}
	}
}

func TestLoadPassages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "passages.txt")
	content := "# comment\n\n  first   passage here \nsecond passage\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write passages: %v", err)
	}
	passages, err := LoadPassages(path)
	if err != nil {
		t.Fatalf("load passages: %v", err)
	}
	if len(passages) != 2 || passages[0] != "first passage here" || passages[1] != "second passage" {
		t.Fatalf("unexpected passages: %q", passages)
	}
}

func TestLoadPassagesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0o644); err != nil {
		t.Fatalf("write passages: %v", err)
	}
	if _, err := LoadPassages(path); err == nil {
		t.Fatalf("expected error for empty passage file")
	}
}

func TestVocabulary(t *testing.T) {
	words := Vocabulary([]string{"The cat, the dog.", "A dog!"})
	want := []string{"the", "cat", "dog", "a"}
	if len(words) != len(want) {
		t.Fatalf("expected %v, got %v", want, words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, words)
		}
	}
}

func TestWordsNext(t *testing.T) {
	src := NewWords([]string{"alpha", "beta"}, WordsConfig{Count: 6}, 7)
	text, err := src.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	fields := strings.Fields(text)
	if len(fields) != 6 {
		t.Fatalf("expected 6 words, got %q", text)
	}
	for _, f := range fields {
		if f != "alpha" && f != "beta" {
			t.Fatalf("unexpected word %q", f)
		}
	}
}

func TestWordsCapsAndPunct(t *testing.T) {
	src := NewWords([]string{"word"}, WordsConfig{Count: 3, CapsPct: 1, PunctPct: 1, PunctSet: []rune{'!'}}, 7)
	text, err := src.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if text != "Word! Word! Word!" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestWordsEmptyVocabulary(t *testing.T) {
	if _, err := NewWords(nil, WordsConfig{Count: 3}, 1).Next(); !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}
