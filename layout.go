package textlayout

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/textlayout/classify"
	"github.com/gogpu/textlayout/font"
	"github.com/gogpu/textlayout/linebreak"
	"github.com/gogpu/textlayout/shape"
)

// Layout is the result of laying out one text.
// The caller owns it; nothing is shared with other layouts.
type Layout struct {
	glyphs  []shape.Glyph
	runs    []shape.Run
	lines   []linebreak.Line
	metrics TextMetrics
	scale   float64
	backend Backend
}

// CreateLayout shapes text with c and breaks it into lines.
func CreateLayout(c font.Collection, text []rune, s Settings) (*Layout, error) {
	if c == nil || c.Len() == 0 || c.PrimaryFont(0) == nil {
		return nil, ErrNilCollection
	}
	if !s.Backend.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(s.Backend))
	}

	b := s.Backend.resolve(c.LayoutLevel())
	res, err := shapeCollection(b, c, text)
	if err != nil {
		return nil, fmt.Errorf("textlayout: shape: %w", err)
	}

	primary := c.PrimaryFont(0)
	lines, metrics := computeLayout(s, res, primary, b)

	Logger().Debug("textlayout: layout created",
		slog.String("backend", b.String()),
		slog.Int("codepoints", len(text)),
		slog.Int("glyphs", len(res.Glyphs)),
		slog.Int("lines", len(lines)))

	return &Layout{
		glyphs:  res.Glyphs,
		runs:    res.Runs,
		lines:   lines,
		metrics: metrics,
		scale:   primary.ScaleForPixelSize(s.Size),
		backend: b,
	}, nil
}

// CreateLayoutString is CreateLayout for a UTF-8 string.
func CreateLayoutString(c font.Collection, text string, s Settings) (*Layout, error) {
	return CreateLayout(c, classify.CodepointsString(text), s)
}

// ShapeText shapes text with a single font.
// BackendAuto selects BackendComplex when f can be shaped with HarfBuzz.
func ShapeText(f font.Font, text []rune, b Backend) (*shape.Result, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	if !b.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(b))
	}
	c, err := font.NewCollection(fontLevel(f), f)
	if err != nil {
		return nil, fmt.Errorf("textlayout: %w", err)
	}
	res, err := shapeCollection(b.resolve(c.LayoutLevel()), c, text)
	if err != nil {
		return nil, fmt.Errorf("textlayout: shape: %w", err)
	}
	return res, nil
}

// ComputeLayout breaks a shaping result into lines and computes its
// metrics. f must be the font r was shaped with; s.Backend is resolved the
// same way as in ShapeText.
func ComputeLayout(s Settings, r *shape.Result, f font.Font) ([]linebreak.Line, TextMetrics, error) {
	if f == nil {
		return nil, TextMetrics{}, ErrNilFont
	}
	if r == nil {
		return nil, TextMetrics{}, ErrNilResult
	}
	if !s.Backend.valid() {
		return nil, TextMetrics{}, fmt.Errorf("%w: %d", ErrUnknownBackend, int(s.Backend))
	}
	lines, metrics := computeLayout(s, r, f, s.Backend.resolve(fontLevel(f)))
	return lines, metrics, nil
}

func computeLayout(s Settings, r *shape.Result, primary font.Font, b Backend) ([]linebreak.Line, TextMetrics) {
	scale := primary.ScaleForPixelSize(s.Size)
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}

	lines, width := linebreak.Break(r.Glyphs, linebreak.Options{
		MaxWidth:       s.MaxWidth / scale,
		AllowLineBreak: s.AllowLineBreak,
		Metric:         b.metric(s, scale),
	})

	ascent, descent := fontExtents(primary, r.Glyphs)
	return lines, newTextMetrics(width, len(lines), s.Leading, ascent, descent)
}

// Glyphs returns the positioned glyphs in logical order.
func (l *Layout) Glyphs() []shape.Glyph {
	return l.glyphs
}

// GlyphCount returns the number of glyphs.
func (l *Layout) GlyphCount() int {
	return len(l.glyphs)
}

// Lines returns the lines in order.
func (l *Layout) Lines() []linebreak.Line {
	return l.lines
}

// LineCount returns the number of lines.
func (l *Layout) LineCount() int {
	return len(l.lines)
}

// Runs returns the runs partitioning the glyphs.
func (l *Layout) Runs() []shape.Run {
	return l.runs
}

// Bounds returns the width and height of the layout in font units.
func (l *Layout) Bounds() (width, height float64) {
	return l.metrics.Width, l.metrics.Height
}

// Metrics returns the aggregate metrics in font units.
func (l *Layout) Metrics() TextMetrics {
	return l.metrics
}

// Scale returns the factor converting the layout's font units to pixels.
func (l *Layout) Scale() float64 {
	return l.scale
}

// Backend returns the backend the layout was shaped with.
// It is never BackendAuto.
func (l *Layout) Backend() Backend {
	return l.backend
}

// Free releases the glyph, run and line slices. The layout reports no
// glyphs, lines or runs afterwards.
func (l *Layout) Free() {
	l.glyphs = nil
	l.runs = nil
	l.lines = nil
	l.metrics = TextMetrics{}
}
