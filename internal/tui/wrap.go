package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/speedtype/internal/engine"
)

// wrongSpaceRune marks a space that was typed as something else.
const wrongSpaceRune = '\u2022'

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

func buildStyledRunes(targetRunes []rune, status []engine.CharStatus, cursorIndex int) []styledRune {
	wordStart, wordEnd, hasWord := currentWord(targetRunes, cursorIndex)

	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := target
		style := pendingStyle
		switch {
		case i < len(status) && status[i] == engine.Correct:
			style = correctStyle
		case i < len(status):
			style = incorrectStyle
			if target == ' ' {
				displayed = wrongSpaceRune
			}
		case hasWord && i >= wordStart && i < wordEnd:
			style = currentWordStyle
		}
		if i == cursorIndex && i >= len(status) {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: target == ' ',
		})
	}
	return out
}

// currentWord returns the bounds of the word under the cursor. A cursor on
// a space selects the next word.
func currentWord(target []rune, cursor int) (start, end int, ok bool) {
	if cursor < 0 || cursor >= len(target) {
		return 0, 0, false
	}
	i := cursor
	for i < len(target) && target[i] == ' ' {
		i++
	}
	if i == len(target) {
		return 0, 0, false
	}
	start, end = i, i
	for start > 0 && target[start-1] != ' ' {
		start--
	}
	for end < len(target) && target[end] != ' ' {
		end++
	}
	return start, end, true
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines between words so no line exceeds width
// cells. The space at a break is dropped; words wider than a line are split.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	lineWidth := 0
	var spaces []styledRune
	for pos := 0; pos < len(runes); {
		if runes[pos].isSpace {
			spaces = append(spaces, runes[pos])
			pos++
			continue
		}
		end := pos
		for end < len(runes) && !runes[end].isSpace {
			end++
		}
		word := runes[pos:end]
		pos = end

		spaceWidth := lineWidthOf(spaces)
		if lineWidth > 0 && lineWidth+spaceWidth+lineWidthOf(word) > width {
			out.WriteByte('\n')
			lineWidth = 0
		} else {
			out.WriteString(renderStyledRunes(spaces))
			lineWidth += spaceWidth
		}
		spaces = spaces[:0]

		for _, item := range word {
			if lineWidth > 0 && lineWidth+item.width > width {
				out.WriteByte('\n')
				lineWidth = 0
			}
			out.WriteString(item.s)
			lineWidth += item.width
		}
	}
	out.WriteString(renderStyledRunes(spaces))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}
