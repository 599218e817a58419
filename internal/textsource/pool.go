// Package textsource supplies reference texts for typing sessions.
package textsource

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyPool is returned when a pool has no passages to choose from.
var ErrEmptyPool = errors.New("passage pool is empty")

// DefaultPassages is the built-in paragraph pool.
var DefaultPassages = []string{
	"Once upon a time, a little rabbit named Ruby loved to hop through the green forest and chase butterflies.",
	"In a quiet village, a boy found a magic pencil that brought all his drawings to life, including a dancing dinosaur.",
	"Ellie the elephant wanted to fly, so her jungle friends tied balloons to her back and she soared through the clouds.",
	"Luna the cat discovered a hidden door in her backyard that led to a secret land made entirely of candy and chocolate.",
	"A tiny turtle named Timmy decided to race a fast rabbit, and with patience and determination, he won the race.",
}

// Pool selects passages uniformly at random.
type Pool struct {
	passages []string
	rnd      *rand.Rand
}

// NewPool returns a Pool over passages seeded with seed. A zero seed uses
// the current time.
func NewPool(passages []string, seed int64) *Pool {
	return &Pool{
		passages: append([]string(nil), passages...),
		rnd:      newRand(seed),
	}
}

// Next returns a random passage from the pool.
func (p *Pool) Next() (string, error) {
	if len(p.passages) == 0 {
		return "", ErrEmptyPool
	}
	return p.passages[p.rnd.Intn(len(p.passages))], nil
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
