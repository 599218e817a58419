package textsource

import (
	"errors"
	"math/rand"
	"strings"
	"unicode"
)

// ErrNoWords is returned when a word source has an empty vocabulary.
var ErrNoWords = errors.New("word source has no words")

// WordsConfig controls generated word passages.
type WordsConfig struct {
	Count    int
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
}

// Words builds passages from randomly chosen words.
type Words struct {
	words []string
	cfg   WordsConfig
	rnd   *rand.Rand
}

// NewWords returns a Words source over vocabulary seeded with seed. A zero
// seed uses the current time.
func NewWords(vocabulary []string, cfg WordsConfig, seed int64) *Words {
	return &Words{
		words: append([]string(nil), vocabulary...),
		cfg:   cfg,
		rnd:   newRand(seed),
	}
}

// Next returns Count words joined by single spaces. Each word is picked
// uniformly and then capitalized or suffixed with punctuation according to
// the configured probabilities.
func (w *Words) Next() (string, error) {
	if len(w.words) == 0 || w.cfg.Count <= 0 {
		return "", ErrNoWords
	}
	out := make([]string, 0, w.cfg.Count)
	for i := 0; i < w.cfg.Count; i++ {
		word := w.words[w.rnd.Intn(len(w.words))]
		word = applyCaps(w.rnd, word, w.cfg.CapsPct)
		word = applyPunct(w.rnd, word, w.cfg.PunctPct, w.cfg.PunctSet)
		out = append(out, word)
	}
	return strings.Join(out, " "), nil
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 || rnd.Float64() > capsPct {
		return word
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 || rnd.Float64() > punctPct {
		return word
	}
	return word + string(punctSet[rnd.Intn(len(punctSet))])
}

func isPunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
