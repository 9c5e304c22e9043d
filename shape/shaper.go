package shape

import (
	"log/slog"
	"sync/atomic"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"

	"github.com/gogpu/textlayout/font"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Direction specifies the writing direction of a run.
type Direction int

const (
	// DirectionLTR is left-to-right text (English, French, etc.)
	DirectionLTR Direction = iota
	// DirectionRTL is right-to-left text (Arabic, Hebrew)
	DirectionRTL
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "LTR"
	case DirectionRTL:
		return "RTL"
	default:
		return unknownStr
	}
}

// toDI converts the direction to go-text's di.Direction.
func (d Direction) toDI() di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

func fromDI(d di.Direction) Direction {
	if d.Progression() == di.TowardTopLeft {
		return DirectionRTL
	}
	return DirectionLTR
}

// Glyph is a positioned glyph on an infinite single line.
// All lengths are in the font's unscaled unit space.
type Glyph struct {
	// X, Y are the pen position of the glyph's origin.
	X, Y float64

	// Codepoint is the source codepoint of the glyph's cluster.
	Codepoint rune

	// Index is the glyph index in Font.
	Index font.GlyphIndex

	// Width and Height are the size of the glyph's ink box.
	Width, Height float64

	// Advance is the horizontal distance to the next glyph.
	Advance float64

	// LeftBearing is the offset from X to the left ink edge.
	LeftBearing float64

	// Cluster is the index of the first source codepoint of the glyph's cluster.
	Cluster int

	// RTL is set for glyphs of a right-to-left paragraph whose positions
	// grow leftwards.
	RTL bool

	// Font is the font Index refers to.
	Font font.Font
}

// Run is a contiguous span of glyphs sharing script, direction and font.
type Run struct {
	Start     int
	Len       int
	Script    language.Script
	Direction Direction
	Font      font.Font
}

// End returns the index one past the last glyph of the run.
func (r Run) End() int {
	return r.Start + r.Len
}

// Result is the output of a shaping call.
// The caller owns the slices; nothing is retained by the shaper.
type Result struct {
	// Glyphs holds the glyphs in logical order.
	Glyphs []Glyph

	// Runs partition Glyphs into contiguous, gap-free segments.
	Runs []Run

	// Valid is the number of glyphs resolved to a real font glyph,
	// i.e. excluding placeholders and .notdef.
	Valid int
}

// Validate checks that the runs partition the glyph slice.
func (r *Result) Validate() error {
	next := 0
	for i, run := range r.Runs {
		if run.Start != next || run.Len < 0 {
			return &RunPartitionError{Run: i, Start: run.Start, Expected: next}
		}
		next = run.End()
	}
	if next != len(r.Glyphs) {
		return &RunPartitionError{Run: len(r.Runs), Start: next, Expected: len(r.Glyphs)}
	}
	return nil
}

// Shaper converts codepoints to positioned glyphs with a single font.
type Shaper interface {
	Shape(f font.Font, text []rune) (*Result, error)
}

// CollectionShaper shapes with a font collection, selecting fallback fonts
// for codepoints the primary font does not cover.
type CollectionShaper interface {
	Shaper
	ShapeCollection(c font.Collection, text []rune) (*Result, error)
}

// logHolder stores a backend's logger. The zero value discards all output.
type logHolder struct {
	p atomic.Pointer[slog.Logger]
}

var discard = slog.New(slog.DiscardHandler)

// SetLogger sets the logger used by the backend. Pass nil to disable logging.
func (h *logHolder) SetLogger(l *slog.Logger) {
	h.p.Store(l)
}

func (h *logHolder) logger() *slog.Logger {
	if l := h.p.Load(); l != nil {
		return l
	}
	return discard
}
