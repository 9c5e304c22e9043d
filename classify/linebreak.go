package classify

import (
	"github.com/rivo/uniseg"
)

// Break is a line break opportunity after a codepoint.
type Break uint8

const (
	// BreakNone means no break is allowed after the codepoint.
	BreakNone Break = iota
	// BreakAllowed means a line may end after the codepoint.
	BreakAllowed
	// BreakMandatory means a line must end after the codepoint.
	BreakMandatory
)

// String returns the string representation of the break.
func (b Break) String() string {
	switch b {
	case BreakNone:
		return "None"
	case BreakAllowed:
		return "Allowed"
	case BreakMandatory:
		return "Mandatory"
	default:
		return "Unknown"
	}
}

// LineBreaks returns the UAX #14 break opportunity after each codepoint of
// text. The final codepoint always reports BreakMandatory (end of text).
func LineBreaks(text []rune) []Break {
	if len(text) == 0 {
		return nil
	}

	breaks := make([]Break, len(text))
	rest := string(text)
	state := -1
	pos := 0
	for len(rest) > 0 {
		var segment string
		var mustBreak bool
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)

		// Segments never split a codepoint, so counting runes maps the
		// segment end back to a codepoint index.
		pos += countRunes(segment)
		if pos == 0 {
			continue
		}
		if mustBreak {
			breaks[pos-1] = BreakMandatory
		} else {
			breaks[pos-1] = BreakAllowed
		}
	}
	breaks[len(breaks)-1] = BreakMandatory
	return breaks
}

func countRunes(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
