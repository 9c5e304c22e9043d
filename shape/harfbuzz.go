package shape

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/textlayout/font"
)

// HarfBuzz is the general shaping backend built on go-text/typesetting.
// It supports ligatures, kerning, contextual alternates and complex
// scripts within a single font.
//
// Runs are shaped in logical order with one pen advancing left to right;
// within a right-to-left run glyphs keep the shaper's visual order. X
// therefore grows along the glyph slice of every run, and within a
// right-to-left run X does not increase with Cluster. Runs are not
// reordered visually; use Complex for that.
//
// HarfBuzz is safe for concurrent use. go-text shapers carry mutable
// buffers, so they are pooled and never shared between calls in flight.
type HarfBuzz struct {
	logHolder

	segmenter Segmenter
	language  language.Language
	pool      sync.Pool
}

// HarfBuzzOption configures a HarfBuzz shaper.
type HarfBuzzOption func(*HarfBuzz)

// WithBaseDirection sets the paragraph direction used for neutral text.
func WithBaseDirection(d Direction) HarfBuzzOption {
	return func(s *HarfBuzz) {
		s.segmenter.BaseDirection = d
	}
}

// WithLanguage sets the language tag passed to the shaper (e.g. "en", "ar").
func WithLanguage(tag string) HarfBuzzOption {
	return func(s *HarfBuzz) {
		s.language = language.NewLanguage(tag)
	}
}

// NewHarfBuzz creates a general shaping backend.
func NewHarfBuzz(opts ...HarfBuzzOption) *HarfBuzz {
	s := &HarfBuzz{
		segmenter: Segmenter{BaseDirection: DirectionLTR},
		language:  language.NewLanguage("en"),
		pool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shape implements the Shaper interface.
func (s *HarfBuzz) Shape(f font.Font, text []rune) (*Result, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	typeface := f.Typeface()
	if typeface == nil {
		return nil, ErrUnsupportedFont
	}
	if len(text) == 0 {
		return &Result{}, nil
	}

	// font.Face is not safe for concurrent use; each call gets its own.
	face := gotext.NewFace(typeface)
	segments := s.segmenter.Segment(text)

	hb := s.pool.Get().(*shaping.HarfbuzzShaper)
	defer s.pool.Put(hb)

	res := &Result{
		Glyphs: make([]Glyph, 0, len(text)),
		Runs:   make([]Run, 0, len(segments)),
	}

	var pen float64
	for _, seg := range segments {
		out := hb.Shape(shaping.Input{
			Text:      text,
			RunStart:  seg.Start,
			RunEnd:    seg.End,
			Direction: seg.Direction.toDI(),
			Face:      face,
			Size:      unitsSize(typeface),
			Script:    seg.Script,
			Language:  s.language,
		})

		// Ligatures and decompositions change the glyph count; reserve
		// what this run needs before appending.
		start := len(res.Glyphs)
		res.Glyphs = slices.Grow(res.Glyphs, len(out.Glyphs))

		for _, g := range out.Glyphs {
			cluster := g.TextIndex()
			glyph := Glyph{
				X:         pen + fixedToFloat(g.XOffset),
				Y:         fixedToFloat(g.YOffset),
				Codepoint: text[cluster],
				Index:     font.GlyphIndex(g.GlyphID), //nolint:gosec // glyph IDs fit uint16 in TrueType/OpenType fonts
				Advance:   fixedToFloat(g.Advance),
				Cluster:   cluster,
				Font:      f,
			}
			if bounds, ok := f.GlyphBounds(glyph.Index); ok {
				glyph.Width = bounds.Width()
				glyph.Height = bounds.Height()
				glyph.LeftBearing = bounds.MinX
			}
			if glyph.Index != 0 {
				res.Valid++
			} else {
				s.logger().Debug("shape: codepoint not covered by font",
					slog.String("codepoint", fmt.Sprintf("%U", glyph.Codepoint)),
					slog.String("font", f.Name()))
			}
			res.Glyphs = append(res.Glyphs, glyph)
			pen += glyph.Advance
		}

		res.Runs = append(res.Runs, Run{
			Start:     start,
			Len:       len(out.Glyphs),
			Script:    seg.Script,
			Direction: seg.Direction,
			Font:      f,
		})
	}

	return res, nil
}

// unitsSize returns the shaping size that makes go-text output font units.
func unitsSize(f *gotext.Font) fixed.Int26_6 {
	return fixed.I(int(f.Upem()))
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
