package linebreak

// Line is one laid out line.
//
// Index and Count address the line's glyphs in the shaped glyph slice.
// Whitespace consumed by a soft break belongs to no line, and trailing
// whitespace may be counted without being measured. Count is zero for a
// blank line between consecutive newlines.
type Line struct {
	Index int
	Count int

	// Width is the measured width in glyph units.
	// It is negative for right-to-left lines measured by [Bidi].
	Width float64
}

// End returns the index one past the line's last glyph.
func (l Line) End() int {
	return l.Index + l.Count
}

// Empty reports whether the line has no glyphs.
func (l Line) Empty() bool {
	return l.Count == 0
}
