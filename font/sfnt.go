package font

import (
	"bytes"
	"fmt"
	"math"
	"os"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNT is a Font backed by TrueType or OpenType font data.
//
// Metrics come from golang.org/x/image/font/sfnt; the shaping typeface is
// parsed by go-text/typesetting from the same data, so glyph indices agree.
// SFNT is safe for concurrent use.
type SFNT struct {
	font     *opentype.Font
	typeface *gotext.Font
	name     string
	upem     float64

	glyphs   *Cache[glyphKey, glyphEntry]
	coverage *coverage
}

type glyphKey struct {
	r       rune
	scale   float64
	hinting Hinting
}

type glyphEntry struct {
	glyph Glyph
	found bool
}

// NewFont parses font data (TTF or OTF).
// The data slice is not retained after this call returns.
func NewFont(data []byte, opts ...Option) (*SFNT, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}

	s := &SFNT{
		font:     f,
		name:     cfg.name,
		upem:     float64(f.UnitsPerEm()),
		glyphs:   NewCache[glyphKey, glyphEntry](cfg.cacheLimit),
		coverage: newCoverage(),
	}
	if s.name == "" {
		s.name = familyName(f)
	}

	// A font x/image accepts may still be rejected by go-text; such a font
	// is usable for legacy layout only.
	if face, err := gotext.ParseTTF(bytes.NewReader(data)); err == nil {
		s.typeface = face.Font
	}

	return s, nil
}

// NewFontFromFile loads a font from a file path.
func NewFontFromFile(path string, opts ...Option) (*SFNT, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("font: failed to read font file: %w", err)
	}
	return NewFont(data, opts...)
}

// Name implements Font.Name.
func (s *SFNT) Name() string {
	return s.name
}

// UnitsPerEm returns the font's design units per em.
func (s *SFNT) UnitsPerEm() float64 {
	return s.upem
}

// ScaleForPixelSize implements Font.ScaleForPixelSize.
func (s *SFNT) ScaleForPixelSize(size float64) float64 {
	if size <= 0 || s.upem <= 0 {
		return 1
	}
	return size / s.upem
}

// HasGlyph reports whether the font maps r to a glyph.
func (s *SFNT) HasGlyph(r rune) bool {
	if covered, checked := s.coverage.get(r); checked {
		return covered
	}
	var buf sfnt.Buffer
	idx, err := s.font.GlyphIndex(&buf, r)
	covered := err == nil && idx != 0
	s.coverage.set(r, covered)
	return covered
}

// Glyph implements Font.Glyph.
func (s *SFNT) Glyph(r rune, scale float64, opts GlyphOptions) (Glyph, error) {
	key := glyphKey{r: r, scale: scale, hinting: opts.Hinting}
	if e, ok := s.glyphs.Get(key); ok {
		if !e.found {
			return Glyph{}, ErrGlyphNotFound
		}
		return e.glyph, nil
	}

	g, found := s.lookup(r, scale, opts.Hinting)
	s.glyphs.Set(key, glyphEntry{glyph: g, found: found})
	if !found {
		return Glyph{}, ErrGlyphNotFound
	}
	return g, nil
}

func (s *SFNT) lookup(r rune, scale float64, h Hinting) (Glyph, bool) {
	if !s.HasGlyph(r) {
		return Glyph{}, false
	}

	var buf sfnt.Buffer
	idx, err := s.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return Glyph{}, false
	}

	bounds, advance, err := s.font.GlyphBounds(&buf, idx, s.ppem(scale), toXHinting(h))
	if err != nil {
		return Glyph{}, false
	}

	// x/image bounds grow downwards.
	return Glyph{
		Codepoint:   r,
		Index:       GlyphIndex(idx),
		Width:       fixedToFloat64(bounds.Max.X - bounds.Min.X),
		Height:      fixedToFloat64(bounds.Max.Y - bounds.Min.Y),
		Advance:     fixedToFloat64(advance),
		LeftBearing: fixedToFloat64(bounds.Min.X),
		Ascent:      -fixedToFloat64(bounds.Min.Y),
		Descent:     fixedToFloat64(bounds.Max.Y),
	}, true
}

// Ascent implements Font.Ascent.
func (s *SFNT) Ascent(scale float64) float64 {
	m, err := s.metrics(scale)
	if err != nil {
		return 0
	}
	return fixedToFloat64(m.Ascent)
}

// Descent implements Font.Descent.
func (s *SFNT) Descent(scale float64) float64 {
	m, err := s.metrics(scale)
	if err != nil {
		return 0
	}
	return math.Abs(fixedToFloat64(m.Descent))
}

func (s *SFNT) metrics(scale float64) (xfont.Metrics, error) {
	var buf sfnt.Buffer
	return s.font.Metrics(&buf, s.ppem(scale), xfont.HintingNone)
}

// GlyphBounds implements Font.GlyphBounds.
func (s *SFNT) GlyphBounds(idx GlyphIndex) (Rect, bool) {
	var buf sfnt.Buffer
	bounds, _, err := s.font.GlyphBounds(&buf, sfnt.GlyphIndex(idx), s.ppem(1), xfont.HintingNone)
	if err != nil {
		return Rect{}, false
	}
	r := Rect{
		MinX: fixedToFloat64(bounds.Min.X),
		MinY: -fixedToFloat64(bounds.Max.Y),
		MaxX: fixedToFloat64(bounds.Max.X),
		MaxY: -fixedToFloat64(bounds.Min.Y),
	}
	if r.Empty() {
		return r, false
	}
	return r, true
}

// Typeface implements Font.Typeface.
func (s *SFNT) Typeface() *gotext.Font {
	return s.typeface
}

// ppem returns the pixels-per-em for scale; scale 1 yields font units.
func (s *SFNT) ppem(scale float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(s.upem * scale * 64))
}

func familyName(f *opentype.Font) string {
	var buf sfnt.Buffer
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.Name(&buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return ""
}

func toXHinting(h Hinting) xfont.Hinting {
	switch h {
	case HintingVertical:
		return xfont.HintingVertical
	case HintingFull:
		return xfont.HintingFull
	default:
		return xfont.HintingNone
	}
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
