package shape

import (
	"cmp"
	"fmt"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"

	"github.com/gogpu/textlayout/font"
)

// Complex is the complex-text-layout backend. Segmentation by bidi level,
// script and font coverage is delegated to go-text's shaping.Segmenter;
// each resulting run is shaped with HarfBuzz and the runs of every
// paragraph are reordered visually.
//
// Glyphs are returned in logical order. Positions are visual: a
// left-to-right paragraph grows rightwards from 0, a right-to-left
// paragraph grows leftwards from 0 and its glyphs have RTL set.
//
// Complex is safe for concurrent use.
type Complex struct {
	logHolder

	base     Direction
	language language.Language

	shapers    sync.Pool
	segmenters sync.Pool
}

// ComplexOption configures a Complex shaper.
type ComplexOption func(*Complex)

// WithParagraphDirection sets the direction of paragraphs without strong
// directional codepoints.
func WithParagraphDirection(d Direction) ComplexOption {
	return func(s *Complex) {
		s.base = d
	}
}

// WithComplexLanguage sets the language tag passed to the shaper.
func WithComplexLanguage(tag string) ComplexOption {
	return func(s *Complex) {
		s.language = language.NewLanguage(tag)
	}
}

// NewComplex creates a complex-text-layout backend.
func NewComplex(opts ...ComplexOption) *Complex {
	s := &Complex{
		base:     DirectionLTR,
		language: language.NewLanguage("en"),
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		segmenters: sync.Pool{
			New: func() any { return &shaping.Segmenter{} },
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Shape implements the Shaper interface using f as a one-font collection.
func (s *Complex) Shape(f font.Font, text []rune) (*Result, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	if f.Typeface() == nil {
		return nil, ErrUnsupportedFont
	}
	c, err := font.NewCollection(font.LevelFull, f)
	if err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}
	return s.ShapeCollection(c, text)
}

// ShapeCollection implements the CollectionShaper interface.
func (s *Complex) ShapeCollection(c font.Collection, text []rune) (*Result, error) {
	if c == nil {
		return nil, ErrNilCollection
	}
	faces := font.NewFaceMap(c)
	if faces.Len() == 0 {
		return nil, ErrUnsupportedFont
	}
	if len(text) == 0 {
		return &Result{}, nil
	}

	hb := s.shapers.Get().(*shaping.HarfbuzzShaper)
	defer s.shapers.Put(hb)
	seg := s.segmenters.Get().(*shaping.Segmenter)
	defer s.segmenters.Put(seg)

	res := &Result{
		Glyphs: make([]Glyph, 0, len(text)),
	}
	for _, para := range splitParagraphs(text) {
		if err := s.shapeParagraph(res, hb, seg, faces, text, para); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// shapedRun is one shaped segment of a paragraph.
type shapedRun struct {
	out    shaping.Output
	font   font.Font
	dir    Direction
	script language.Script
	level  int

	// visual lists glyph indices of out left to right; logical lists them
	// in text order.
	visual, logical []int
}

func (s *Complex) shapeParagraph(res *Result, hb *shaping.HarfbuzzShaper, seg *shaping.Segmenter,
	faces *font.FaceMap, text []rune, para paragraph) error {
	dir := paragraphDirection(text[para.start:para.end], s.base)
	paraLevel := 0
	if dir == DirectionRTL {
		paraLevel = 1
	}

	primary := faces.Primary()
	inputs := seg.Split(shaping.Input{
		Text:      text,
		RunStart:  para.start,
		RunEnd:    para.end,
		Direction: dir.toDI(),
		Face:      primary,
		Size:      unitsSize(primary.Font),
		Language:  s.language,
	}, faces)

	runs := make([]shapedRun, 0, len(inputs))
	levels := make([]int, 0, len(inputs))
	for _, in := range inputs {
		if in.RunStart >= in.RunEnd {
			continue
		}
		f, ok := faces.Resolve(in.Face)
		if !ok {
			return fmt.Errorf("%w: no font for run [%d, %d)", ErrShapeFailed, in.RunStart, in.RunEnd)
		}
		if f != faces.PrimaryFont() {
			s.logger().Debug("shape: using fallback font",
				slog.String("font", f.Name()),
				slog.Int("start", in.RunStart),
				slog.Int("end", in.RunEnd))
		}

		// Each font shapes in its own units.
		in.Size = unitsSize(f.Typeface())
		out := hb.Shape(in)

		r := shapedRun{
			out:    out,
			font:   f,
			dir:    fromDI(in.Direction),
			script: in.Script,
			level:  paraLevel,
		}
		if r.dir != dir {
			r.level++
		}
		r.visual, r.logical = glyphOrders(out.Glyphs, r.dir)
		runs = append(runs, r)
		levels = append(levels, r.level)
	}

	// Lay the runs out visually with one pen.
	xs := make([][]float64, len(runs))
	var pen float64
	for _, ri := range visualOrder(levels) {
		r := &runs[ri]
		xs[ri] = make([]float64, len(r.out.Glyphs))
		for _, gi := range r.visual {
			g := &r.out.Glyphs[gi]
			xs[ri][gi] = pen + fixedToFloat(g.XOffset)
			pen += fixedToFloat(g.Advance)
		}
	}
	var shift float64
	if dir == DirectionRTL {
		shift = -pen
	}

	for ri := range runs {
		r := &runs[ri]
		start := len(res.Glyphs)
		res.Glyphs = slices.Grow(res.Glyphs, len(r.logical))
		for _, gi := range r.logical {
			g := &r.out.Glyphs[gi]
			cluster := g.TextIndex()
			glyph := Glyph{
				X:           xs[ri][gi] + shift,
				Y:           fixedToFloat(g.YOffset),
				Codepoint:   text[cluster],
				Index:       font.GlyphIndex(g.GlyphID), //nolint:gosec // glyph IDs fit uint16 in TrueType/OpenType fonts
				Width:       math.Abs(fixedToFloat(g.Width)),
				Height:      math.Abs(fixedToFloat(g.Height)),
				Advance:     fixedToFloat(g.Advance),
				LeftBearing: fixedToFloat(g.XBearing),
				Cluster:     cluster,
				RTL:         dir == DirectionRTL,
				Font:        r.font,
			}
			if glyph.Index != 0 {
				res.Valid++
			}
			res.Glyphs = append(res.Glyphs, glyph)
		}
		res.Runs = append(res.Runs, Run{
			Start:     start,
			Len:       len(r.logical),
			Script:    r.script,
			Direction: r.dir,
			Font:      r.font,
		})
	}
	return nil
}

// glyphOrders returns the visual and logical orders of a run's glyphs,
// derived from cluster indices so they do not depend on the order the
// shaper emitted them in.
func glyphOrders(glyphs []shaping.Glyph, dir Direction) (visual, logical []int) {
	logical = make([]int, len(glyphs))
	for i := range logical {
		logical[i] = i
	}
	slices.SortStableFunc(logical, func(a, b int) int {
		return cmp.Compare(glyphs[a].TextIndex(), glyphs[b].TextIndex())
	})

	visual = append([]int(nil), logical...)
	if dir == DirectionRTL {
		slices.SortStableFunc(visual, func(a, b int) int {
			return cmp.Compare(glyphs[b].TextIndex(), glyphs[a].TextIndex())
		})
	}
	return visual, logical
}
