package shape

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-text/typesetting/language"

	"github.com/gogpu/textlayout/classify"
	"github.com/gogpu/textlayout/font"
)

// DefaultFallback is the codepoint substituted for unmapped codepoints.
const DefaultFallback = '~'

// Legacy shapes one glyph per codepoint with direct font lookups.
//
// It supports scripts that need no contextual shaping (Latin, Cyrillic,
// Greek, CJK) and lays out strictly left to right without:
//   - Ligature substitution
//   - Kerning pairs
//   - Right-to-left reordering
//
// The whole input forms a single run. Legacy is safe for concurrent use.
type Legacy struct {
	logHolder

	fallback rune
	options  font.GlyphOptions
}

// LegacyOption configures a Legacy shaper.
type LegacyOption func(*Legacy)

// WithFallback sets the codepoint substituted for unmapped codepoints.
func WithFallback(r rune) LegacyOption {
	return func(s *Legacy) {
		s.fallback = r
	}
}

// WithGlyphOptions sets the options passed to every glyph query.
func WithGlyphOptions(opts font.GlyphOptions) LegacyOption {
	return func(s *Legacy) {
		s.options = opts
	}
}

// NewLegacy creates a legacy shaper.
func NewLegacy(opts ...LegacyOption) *Legacy {
	s := &Legacy{fallback: DefaultFallback}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shape implements the Shaper interface.
// Glyphs are queried at scale 1.0; Y is always 0.
func (s *Legacy) Shape(f font.Font, text []rune) (*Result, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	if len(text) == 0 {
		return &Result{}, nil
	}

	res := &Result{
		Glyphs: make([]Glyph, 0, len(text)),
	}

	var x float64
	for i, r := range text {
		g, ok, err := s.glyph(f, r)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Valid++
		}

		res.Glyphs = append(res.Glyphs, Glyph{
			X:           x,
			Codepoint:   r,
			Index:       g.Index,
			Width:       g.Width,
			Height:      g.Height,
			Advance:     g.Advance,
			LeftBearing: g.LeftBearing,
			Cluster:     i,
			Font:        f,
		})
		x += g.Advance
	}

	res.Runs = []Run{{
		Start:     0,
		Len:       len(res.Glyphs),
		Script:    language.Common,
		Direction: DirectionLTR,
		Font:      f,
	}}
	return res, nil
}

// glyph looks up r, substituting the fallback codepoint once on a miss.
// The boolean result is false when a zero-sized placeholder is returned.
func (s *Legacy) glyph(f font.Font, r rune) (font.Glyph, bool, error) {
	g, err := f.Glyph(r, 1, s.options)
	if err == nil {
		return g, true, nil
	}
	if !errors.Is(err, font.ErrGlyphNotFound) {
		return font.Glyph{}, false, fmt.Errorf("shape: glyph %U: %w", r, err)
	}

	// Line terminators are never drawn.
	if r == 0 || classify.IsNewline(r) {
		return font.Glyph{Codepoint: r}, false, nil
	}

	g, err = f.Glyph(s.fallback, 1, s.options)
	if err == nil {
		s.logger().Debug("shape: glyph not found, using fallback",
			slog.String("codepoint", fmt.Sprintf("%U", r)),
			slog.String("fallback", fmt.Sprintf("%U", s.fallback)))
		return g, true, nil
	}
	if !errors.Is(err, font.ErrGlyphNotFound) {
		return font.Glyph{}, false, fmt.Errorf("shape: fallback glyph %U: %w", s.fallback, err)
	}

	s.logger().Warn("shape: glyph and fallback not found, emitting placeholder",
		slog.String("codepoint", fmt.Sprintf("%U", r)))
	return font.Glyph{Codepoint: r}, false, nil
}
