// Package engine implements the typing session state machine: lifecycle,
// positional comparison, strict-mode deletion policy and timing.
package engine

// CharStatus classifies one typed rune.
type CharStatus int

// Character classifications.
const (
	Correct CharStatus = iota
	Incorrect
)

func (s CharStatus) String() string {
	switch s {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Compare classifies each typed rune against the reference rune at the same
// position and returns the statuses with the number of correct runes.
// Comparison is positional only; runes past the end of the reference are
// incorrect.
func Compare(reference, input []rune) ([]CharStatus, int) {
	if len(input) == 0 {
		return nil, 0
	}
	status := make([]CharStatus, len(input))
	correct := 0
	for i, r := range input {
		if i < len(reference) && r == reference[i] {
			status[i] = Correct
			correct++
			continue
		}
		status[i] = Incorrect
	}
	return status, correct
}

// AllowDeletion reports whether a deletion may proceed. In strict mode a
// deletion is rejected while the most recently typed rune is incorrect.
// Earlier mismatches do not block.
func AllowDeletion(strict bool, status []CharStatus) bool {
	if !strict || len(status) == 0 {
		return true
	}
	return status[len(status)-1] != Incorrect
}
