package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrGlyphNotFound is returned when a font has no glyph for a codepoint.
	ErrGlyphNotFound = errors.New("font: glyph not found")

	// ErrEmptyCollection is returned when a collection is created without fonts.
	ErrEmptyCollection = errors.New("font: collection cannot be empty")

	// ErrNilFont is returned when a nil font is added to a collection.
	ErrNilFont = errors.New("font: nil font")
)
