// Package model defines shared data structures.
package model

import "time"

// Source names accepted by Config.Source.
const (
	SourceParagraphs = "paragraphs"
	SourceWords      = "words"
)

// Config defines practice settings.
type Config struct {
	Strict       bool
	Source       string
	PassagesPath string
	Words        int
	CapsPct      float64
	PunctPct     float64
	PunctSet     string
	Seed         int64
}

// Result captures the frozen statistics of a finished session.
type Result struct {
	SessionID      string
	StartedAt      time.Time
	EndedAt        time.Time
	Strict         bool
	Chars          int
	Correct        int
	ElapsedSeconds int
	WPM            int
	Accuracy       int
}
