package linebreak

import (
	"math"

	"github.com/gogpu/textlayout/classify"
	"github.com/gogpu/textlayout/shape"
)

// Metric measures the width of the candidate line glyphs[start:start+n].
//
// When measureTrailingSpace is false a trailing whitespace glyph is left out
// of the measurement. Implementations return 0 when no glyph remains.
type Metric interface {
	Measure(glyphs []shape.Glyph, start, n int, measureTrailingSpace bool) float64
}

// MetricFunc adapts an ordinary function to the Metric interface.
type MetricFunc func(glyphs []shape.Glyph, start, n int, measureTrailingSpace bool) float64

// Measure calls fn(glyphs, start, n, measureTrailingSpace).
func (fn MetricFunc) Measure(glyphs []shape.Glyph, start, n int, measureTrailingSpace bool) float64 {
	return fn(glyphs, start, n, measureTrailingSpace)
}

// Proportional measures up to the right ink edge of the last glyph.
// It is used with the legacy and general shaping backends.
type Proportional struct {
	// Tracking is extra space between every glyph pair.
	Tracking float64
}

// Measure implements Metric.
func (m Proportional) Measure(glyphs []shape.Glyph, start, n int, measureTrailingSpace bool) float64 {
	n = measured(glyphs, start, n, measureTrailingSpace)
	if n == 0 {
		return 0
	}
	first, last := &glyphs[start], &glyphs[start+n-1]
	return last.X - first.X + float64(n-1)*m.Tracking + last.LeftBearing + last.Width
}

// Monospace measures up to the advance of the last glyph.
type Monospace struct {
	// Tracking is extra space between every glyph pair.
	Tracking float64

	// Padding is added to the advance of the last glyph.
	Padding float64
}

// Measure implements Metric.
func (m Monospace) Measure(glyphs []shape.Glyph, start, n int, measureTrailingSpace bool) float64 {
	n = measured(glyphs, start, n, measureTrailingSpace)
	if n == 0 {
		return 0
	}
	first, last := &glyphs[start], &glyphs[start+n-1]
	return last.X - first.X + float64(n-1)*m.Tracking + last.Advance + m.Padding
}

// Bidi is the direction-aware metric for the complex-text-layout backend.
//
// Glyphs are in logical order but carry visual positions, so the first and
// last glyph of a mixed-direction line need not be its visual edges. Bidi
// measures from the leftmost origin to the rightmost ink edge of the range.
// For a single-direction line this matches Proportional. Lines whose first
// glyph belongs to a right-to-left paragraph measure negative; callers
// compare the absolute value.
type Bidi struct {
	// Tracking is extra space between every glyph pair.
	Tracking float64
}

// Measure implements Metric.
func (m Bidi) Measure(glyphs []shape.Glyph, start, n int, measureTrailingSpace bool) float64 {
	n = measured(glyphs, start, n, measureTrailingSpace)
	if n == 0 {
		return 0
	}
	left, right := math.Inf(1), math.Inf(-1)
	for i := start; i < start+n; i++ {
		g := &glyphs[i]
		left = min(left, g.X)
		right = max(right, g.X+g.LeftBearing+g.Width)
	}
	w := right - left + float64(n-1)*m.Tracking
	if glyphs[start].RTL {
		return -w
	}
	return w
}

// measured returns the number of glyphs to measure, dropping one trailing
// whitespace glyph unless trailing space is measured.
func measured(glyphs []shape.Glyph, start, n int, measureTrailingSpace bool) int {
	if n <= 0 {
		return 0
	}
	if !measureTrailingSpace && classify.IsWhitespace(glyphs[start+n-1].Codepoint) {
		n--
	}
	return n
}
