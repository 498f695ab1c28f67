// Package text provides text analysis helpers for document content.
package text

import (
	"golang.org/x/text/unicode/bidi"
)

// Direction represents the writing direction of text.
// It is used to detect and handle bidirectional text (bidi) in documents.
type Direction int

const (
	// LTR (Left-to-Right) for Latin, Cyrillic, etc.
	LTR Direction = iota
	// RTL (Right-to-Left) for Arabic, Hebrew, etc.
	RTL
	// Neutral for numbers, punctuation, etc.
	Neutral
)

// String returns a string representation of the direction ("LTR", "RTL", or "Neutral").
func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	case Neutral:
		return "Neutral"
	default:
		return "Unknown"
	}
}

// DetectDirection analyzes a string and returns its dominant text direction
// based on Unicode character properties. It counts strong directional
// characters and returns the direction with the higher count, or Neutral if
// no strong directional characters are present.
func DetectDirection(text string) Direction {
	if text == "" {
		return Neutral
	}

	ltrCount := 0
	rtlCount := 0

	for _, r := range text {
		switch GetCharDirection(r) {
		case LTR:
			ltrCount++
		case RTL:
			rtlCount++
		}
	}

	if ltrCount == 0 && rtlCount == 0 {
		return Neutral
	}
	if rtlCount > ltrCount {
		return RTL
	}
	return LTR
}

// GetCharDirection returns the inherent direction of a single Unicode
// character according to its bidi class. Strong left-to-right classes map
// to LTR; strong right-to-left classes (Hebrew, Arabic) map to RTL; digits,
// punctuation, whitespace, and other weak or neutral classes map to Neutral.
func GetCharDirection(r rune) Direction {
	props, _ := bidi.LookupRune(r)
	switch props.Class() {
	case bidi.L, bidi.LRO, bidi.LRE, bidi.LRI:
		return LTR
	case bidi.R, bidi.AL, bidi.RLO, bidi.RLE, bidi.RLI:
		return RTL
	default:
		return Neutral
	}
}
