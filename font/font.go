package font

import (
	gotext "github.com/go-text/typesetting/font"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// GlyphIndex is the font-internal identifier of a glyph.
type GlyphIndex uint16

// Hinting specifies font hinting mode.
type Hinting int

const (
	// HintingNone disables hinting.
	HintingNone Hinting = iota
	// HintingVertical applies vertical hinting only.
	HintingVertical
	// HintingFull applies full hinting.
	HintingFull
)

// String returns the string representation of the hinting.
func (h Hinting) String() string {
	switch h {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingFull:
		return "Full"
	default:
		return unknownStr
	}
}

// GlyphOptions configures a glyph query.
type GlyphOptions struct {
	Hinting Hinting
}

// Rect is a glyph bounding box. Y grows upwards.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.MaxX - r.MinX
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.MaxY - r.MinY
}

// Empty reports whether the rectangle is empty.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Glyph holds the metrics of a single glyph at a given scale.
type Glyph struct {
	// Codepoint is the codepoint the glyph was looked up with.
	Codepoint rune

	// Index is the glyph index in the font.
	Index GlyphIndex

	// Width and Height are the size of the glyph's ink box.
	Width, Height float64

	// Advance is the horizontal distance the pen moves after the glyph.
	Advance float64

	// LeftBearing is the offset from the pen origin to the left ink edge.
	LeftBearing float64

	// Ascent is the extent of the ink box above the baseline.
	Ascent float64

	// Descent is the extent of the ink box below the baseline (positive).
	Descent float64
}

// Font is the glyph metrics capability used by the shapers.
//
// Implementations must be safe for concurrent read-only use: several layout
// calls may query the same Font from different goroutines.
type Font interface {
	// Name returns the font family name, or an empty string.
	Name() string

	// ScaleForPixelSize returns the factor converting font units to pixels
	// for the given size. A size <= 0 yields 1.
	ScaleForPixelSize(size float64) float64

	// Glyph returns the metrics for the glyph mapped to r at the given scale.
	// It returns ErrGlyphNotFound if the font has no glyph for r.
	Glyph(r rune, scale float64, opts GlyphOptions) (Glyph, error)

	// Ascent returns the font ascent at the given scale.
	Ascent(scale float64) float64

	// Descent returns the font descent at the given scale as a positive value.
	Descent(scale float64) float64

	// GlyphBounds returns the unscaled bounding box of the glyph.
	// The second result is false if the glyph has no outline or does not exist.
	GlyphBounds(idx GlyphIndex) (Rect, bool)

	// Typeface returns the parsed font used by HarfBuzz shaping, or nil if
	// the font cannot be shaped that way. The returned value is read-only
	// and safe for concurrent use.
	Typeface() *gotext.Font
}
