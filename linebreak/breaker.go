package linebreak

import (
	"math"

	"github.com/gogpu/textlayout/classify"
	"github.com/gogpu/textlayout/shape"
)

// Options configures Break.
type Options struct {
	// MaxWidth is the maximum line width in glyph units.
	// Zero or negative means unconstrained.
	MaxWidth float64

	// AllowLineBreak enables soft breaks at whitespace. When false only
	// newlines start a new line and trailing whitespace is measured.
	AllowLineBreak bool

	// Metric measures candidate lines. Nil means Proportional{}.
	Metric Metric
}

// Break lays out glyphs according to opts.
// It returns the lines and the largest absolute line width.
func Break(glyphs []shape.Glyph, opts Options) ([]Line, float64) {
	maxWidth := opts.MaxWidth
	if !opts.AllowLineBreak || maxWidth <= 0 {
		maxWidth = math.Inf(1)
	}
	metric := opts.Metric
	if metric == nil {
		metric = Proportional{}
	}
	// Single-line fields reserve room for trailing spaces.
	return Layout(glyphs, maxWidth, metric, !opts.AllowLineBreak)
}

// Layout breaks glyphs into lines no wider than maxWidth.
//
// Widths are compared by absolute value. A line holding a single word wider
// than maxWidth is kept as is. A glyph with codepoint 0 ends the scan; the
// glyphs after it are not laid out.
//
// When measureTrailingSpace is set, whitespace at the end of the input
// belongs to the last line and is measured.
//
// Layout returns the lines and the largest absolute line width.
func Layout(glyphs []shape.Glyph, maxWidth float64, metric Metric, measureTrailingSpace bool) ([]Line, float64) {
	s := scanner{glyphs: glyphs}
	var (
		lines []Line
		total float64
	)

	for {
		rowStart := s.cursor
		n, lastN, trim := 0, 0, 0
		var w, lastW float64
		lastCursor := s.cursor
		var c rune

		for {
			var count int
			c, count = s.nextBreak()
			n += count
			if n > 0 {
				// A scan ending at the end of input re-measures the break
				// codepoint found before it.
				trim = 0
				if c != 0 {
					trim = 1
				}
				w = metric.Measure(glyphs, rowStart, n-trim, measureTrailingSpace)
				if math.Abs(w) <= maxWidth {
					lastN, lastW, lastCursor = n-trim, w, s.cursor
					if !classify.IsNewline(c) && !measureTrailingSpace {
						n += s.skipWhitespace()
						if s.codepoint() == 0 {
							// Only skipped whitespace is left.
							c = 0
						}
					}
				} else if lastN != 0 {
					s.cursor = lastCursor
					c = s.codepoint()
					break
				}
			}
			if math.Abs(w) > maxWidth || c == 0 || classify.IsNewline(c) {
				break
			}
		}

		if math.Abs(w) > maxWidth && lastN == 0 {
			lastN, lastW = n-trim, w
		}
		if n > 0 || c != 0 {
			lines = append(lines, Line{Index: rowStart, Count: lastN, Width: lastW})
			total = max(total, math.Abs(lastW))
		}
		if c == 0 {
			return lines, total
		}
	}
}

// scanner walks a glyph slice by codepoint.
type scanner struct {
	glyphs []shape.Glyph
	cursor int
}

// nextBreak advances past the next breaking codepoint and returns it with
// the number of glyphs consumed. At the end of input, or at a glyph with
// codepoint 0, it returns 0 without consuming that glyph.
func (s *scanner) nextBreak() (rune, int) {
	start := s.cursor
	for s.cursor < len(s.glyphs) {
		c := s.glyphs[s.cursor].Codepoint
		if c == 0 {
			break
		}
		s.cursor++
		if classify.IsBreakingWhitespace(c) {
			return c, s.cursor - start
		}
	}
	return 0, s.cursor - start
}

// skipWhitespace advances past spaces and zero-width spaces and returns the
// number of glyphs skipped.
func (s *scanner) skipWhitespace() int {
	start := s.cursor
	for s.cursor < len(s.glyphs) && classify.IsPlainWhitespace(s.glyphs[s.cursor].Codepoint) {
		s.cursor++
	}
	return s.cursor - start
}

// codepoint returns the codepoint at the cursor, or 0 at the end of input.
func (s *scanner) codepoint() rune {
	if s.cursor >= len(s.glyphs) {
		return 0
	}
	return s.glyphs[s.cursor].Codepoint
}
