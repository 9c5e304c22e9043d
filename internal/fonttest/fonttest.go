// Package fonttest provides deterministic fonts for layout tests.
package fonttest

import (
	gotext "github.com/go-text/typesetting/font"

	"github.com/gogpu/textlayout/font"
)

// Default metrics of a Fixed font, in font units.
const (
	DefaultAdvance = 4
	DefaultAscent  = 8
	DefaultDescent = 2
	DefaultUPEM    = 16
)

// Fixed is a font where every glyph has the same advance and ink width and
// a zero left bearing. It has no typeface, so only the legacy backend can
// shape it.
type Fixed struct {
	GlyphAdvance float64
	FontAscent   float64
	FontDescent  float64
	UnitsPerEm   float64

	// Missing lists codepoints the font has no glyph for.
	Missing map[rune]bool
}

// New returns a Fixed font with the default metrics, missing the given
// codepoints.
func New(missing ...rune) *Fixed {
	f := &Fixed{
		GlyphAdvance: DefaultAdvance,
		FontAscent:   DefaultAscent,
		FontDescent:  DefaultDescent,
		UnitsPerEm:   DefaultUPEM,
		Missing:      make(map[rune]bool, len(missing)),
	}
	for _, r := range missing {
		f.Missing[r] = true
	}
	return f
}

// Name implements font.Font.
func (f *Fixed) Name() string { return "fonttest-fixed" }

// ScaleForPixelSize implements font.Font.
func (f *Fixed) ScaleForPixelSize(size float64) float64 {
	if size <= 0 || f.UnitsPerEm <= 0 {
		return 1
	}
	return size / f.UnitsPerEm
}

// Glyph implements font.Font. The glyph index is the codepoint modulo 2^16,
// or 1 for codepoints that would map to index 0.
func (f *Fixed) Glyph(r rune, scale float64, _ font.GlyphOptions) (font.Glyph, error) {
	if f.Missing[r] {
		return font.Glyph{}, font.ErrGlyphNotFound
	}
	return font.Glyph{
		Codepoint: r,
		Index:     index(r),
		Width:     f.GlyphAdvance * scale,
		Height:    (f.FontAscent + f.FontDescent) * scale,
		Advance:   f.GlyphAdvance * scale,
		Ascent:    f.FontAscent * scale,
		Descent:   f.FontDescent * scale,
	}, nil
}

// Ascent implements font.Font.
func (f *Fixed) Ascent(scale float64) float64 { return f.FontAscent * scale }

// Descent implements font.Font.
func (f *Fixed) Descent(scale float64) float64 { return f.FontDescent * scale }

// GlyphBounds implements font.Font.
func (f *Fixed) GlyphBounds(font.GlyphIndex) (font.Rect, bool) {
	return font.Rect{MinY: -f.FontDescent, MaxX: f.GlyphAdvance, MaxY: f.FontAscent}, true
}

// Typeface implements font.Font and always returns nil.
func (f *Fixed) Typeface() *gotext.Font { return nil }

func index(r rune) font.GlyphIndex {
	idx := font.GlyphIndex(r & 0xFFFF) //nolint:gosec // masked to 16 bits
	if idx == 0 {
		idx = 1
	}
	return idx
}

var _ font.Font = (*Fixed)(nil)
