// Package typeset provides glyph-width-aware line breaking, justification and
// ellipsis truncation over an abstract width measurer.
package typeset

import (
	"math"
	"strings"
)

// Ellipsis is appended to the last kept line by TruncateWithEllipsis.
const Ellipsis = "..."

// Measurer reports the rendered width of a string at a font size. It is bound
// to a single font face; the render layer implements it over the embedded
// font's glyph metrics.
type Measurer interface {
	Width(s string, size float64) float64
}

// Wrap splits text on whitespace and greedily fills lines up to maxWidth.
// A single token wider than maxWidth is placed alone on its own line; there
// is no mid-word breaking. Empty or whitespace-only input yields no lines.
func Wrap(m Measurer, text string, maxWidth, size float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if m.Width(candidate, size) <= maxWidth {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = word
	}
	return append(lines, current)
}

// Justify redistributes the slack of a wrapped line as repeated inter-word
// spaces so its rendered width approaches maxWidth. Callers must not justify
// the last line of a paragraph; lines with fewer than two words are returned
// unchanged.
func Justify(m Measurer, line string, maxWidth, size float64) string {
	words := strings.Fields(line)
	if len(words) < 2 {
		return line
	}

	spaceWidth := m.Width(" ", size)
	if spaceWidth <= 0 {
		return line
	}

	var wordsWidth float64
	for _, word := range words {
		wordsWidth += m.Width(word, size)
	}

	gap := (maxWidth - wordsWidth) / float64(len(words)-1)
	spaces := int(math.Round(gap / spaceWidth))
	if spaces < 1 {
		spaces = 1
	}
	return strings.Join(words, strings.Repeat(" ", spaces))
}

// TruncateWithEllipsis caps a wrapped line sequence at maxLines. When the
// sequence is longer, the last kept line is shortened rune by rune until it
// fits maxWidth with the ellipsis appended. Used for the fixed-height
// biography box only.
func TruncateWithEllipsis(m Measurer, lines []string, maxLines int, maxWidth, size float64) []string {
	if maxLines <= 0 {
		return nil
	}
	if len(lines) <= maxLines {
		return lines
	}

	kept := append([]string(nil), lines[:maxLines]...)
	last := []rune(kept[maxLines-1])
	for len(last) > 0 && m.Width(string(last)+Ellipsis, size) > maxWidth {
		last = last[:len(last)-1]
	}
	kept[maxLines-1] = strings.TrimRight(string(last), " ") + Ellipsis
	return kept
}
