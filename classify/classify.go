// Package classify provides the Unicode classification helpers used by
// shaping and line breaking: whitespace and break classification, codepoint
// decoding and UAX #14 line break opportunities.
//
// All functions are pure and total. Unrecognized codepoints classify as
// neither whitespace nor breaking.
package classify

import (
	"unicode"
	"unicode/utf8"
)

// Codepoints with special meaning for layout.
const (
	Space              = ' '
	ZeroWidthSpace     = '\u200B'
	Newline            = '\n'
	LineSeparator      = '\u2028'
	ParagraphSeparator = '\u2029'
)

// IsWhitespace reports whether r is whitespace for measurement purposes:
// ordinary space, zero-width space, tab and the other Unicode space separators.
// Newlines are not whitespace; they are hard breaks.
func IsWhitespace(r rune) bool {
	switch r {
	case Space, ZeroWidthSpace, '\t':
		return true
	case '\u00A0', '\u2007', '\u202F':
		// No-break spaces must not become break opportunities.
		return false
	}
	return unicode.Is(unicode.Zs, r)
}

// IsPlainWhitespace reports whether r is an ordinary or zero-width space.
// Runs of these are skipped after an accepted line break candidate.
func IsPlainWhitespace(r rune) bool {
	return r == Space || r == ZeroWidthSpace
}

// IsNewline reports whether r forces a line break.
func IsNewline(r rune) bool {
	return r == Newline || r == LineSeparator || r == ParagraphSeparator
}

// IsBreakingWhitespace reports whether r terminates a word span during
// line break search: space, zero-width space, newline or the null terminator.
func IsBreakingWhitespace(r rune) bool {
	return r == 0 || IsPlainWhitespace(r) || IsNewline(r)
}

// IsBreaking is an alias of IsBreakingWhitespace.
func IsBreaking(r rune) bool {
	return IsBreakingWhitespace(r)
}

// NextCodepoint decodes the first codepoint of b and returns it with its
// width in bytes. It returns (0, 0) at end of input. Invalid encodings
// decode to U+FFFD with width 1.
func NextCodepoint(b []byte) (rune, int) {
	if len(b) == 0 {
		return 0, 0
	}
	return utf8.DecodeRune(b)
}

// Codepoints decodes b into a codepoint sequence.
func Codepoints(b []byte) []rune {
	out := make([]rune, 0, utf8.RuneCount(b))
	for len(b) > 0 {
		r, size := NextCodepoint(b)
		out = append(out, r)
		b = b[size:]
	}
	return out
}

// CodepointsString decodes s into a codepoint sequence.
func CodepointsString(s string) []rune {
	return []rune(s)
}
