package textlayout

import (
	"github.com/gogpu/textlayout/font"
	"github.com/gogpu/textlayout/shape"
)

// TextMetrics holds the aggregate metrics of a layout in font units.
type TextMetrics struct {
	// Width is the largest absolute line width.
	Width float64

	// Height is the height of all lines including leading between them.
	Height float64

	// MaxAscent and MaxDescent are the largest ascent and descent of the
	// fonts used, at scale 1.
	MaxAscent  float64
	MaxDescent float64

	// LineCount is the number of lines.
	LineCount int
}

// LineHeight returns the natural line height, MaxAscent + MaxDescent.
func (m TextMetrics) LineHeight() float64 {
	return m.MaxAscent + m.MaxDescent
}

// newTextMetrics computes the metrics of lineCount lines of the given width.
// Leading applies between lines only, never above the first. A leading <= 0
// is treated as 1.
func newTextMetrics(width float64, lineCount int, leading float64, ascent, descent float64) TextMetrics {
	if leading <= 0 {
		leading = 1
	}
	m := TextMetrics{
		Width:      width,
		MaxAscent:  ascent,
		MaxDescent: descent,
		LineCount:  lineCount,
	}
	if lineCount > 0 {
		lh := m.LineHeight()
		m.Height = float64(lineCount)*lh*leading - lh*(leading-1)
	}
	return m
}

// fontExtents returns the largest ascent and descent at scale 1 of primary
// and of every font referenced by glyphs.
func fontExtents(primary font.Font, glyphs []shape.Glyph) (ascent, descent float64) {
	ascent, descent = primary.Ascent(1), primary.Descent(1)
	seen := map[font.Font]bool{primary: true}
	for i := range glyphs {
		f := glyphs[i].Font
		if f == nil || seen[f] {
			continue
		}
		seen[f] = true
		ascent = max(ascent, f.Ascent(1))
		descent = max(descent, f.Descent(1))
	}
	return ascent, descent
}
