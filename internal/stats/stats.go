// Package stats contains statistics calculations and reporting.
package stats

import (
	"math"
)

// charsPerWord is the conventional word length used for WPM.
const charsPerWord = 5.0

// Metrics holds the integer statistics of a finished session.
type Metrics struct {
	WPM      int
	Accuracy int
}

// Compute derives WPM and accuracy from the correct and total typed counts
// and the elapsed whole seconds. Degenerate inputs yield zero values.
func Compute(correct, total, elapsedSeconds int) Metrics {
	return Metrics{
		WPM:      WPM(correct, elapsedSeconds),
		Accuracy: Accuracy(correct, total),
	}
}

// WPM returns round(correct / 5 / minutes).
func WPM(correct, elapsedSeconds int) int {
	if elapsedSeconds <= 0 {
		return 0
	}
	minutes := float64(elapsedSeconds) / 60.0
	return roundNonNegative(float64(correct) / charsPerWord / minutes)
}

// Accuracy returns round(correct / total * 100), or 0 when nothing was typed.
func Accuracy(correct, total int) int {
	if total <= 0 {
		return 0
	}
	acc := roundNonNegative(float64(correct) / float64(total) * 100)
	if acc > 100 {
		return 100
	}
	return acc
}

// Round rounds half up.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

func roundNonNegative(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return Round(v)
}
