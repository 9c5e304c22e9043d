package textlayout

import (
	"fmt"

	"github.com/gogpu/textlayout/font"
	"github.com/gogpu/textlayout/linebreak"
	"github.com/gogpu/textlayout/shape"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Backend selects the shaping backend of a layout.
type Backend int

const (
	// BackendAuto selects BackendComplex for font.LevelFull collections
	// and BackendLegacy otherwise.
	BackendAuto Backend = iota

	// BackendLegacy shapes one glyph per codepoint.
	BackendLegacy

	// BackendHarfBuzz shapes with HarfBuzz using the primary font only.
	BackendHarfBuzz

	// BackendComplex shapes with HarfBuzz, reorders bidirectional text and
	// falls back across the collection.
	BackendComplex
)

// String returns the string representation of the backend.
func (b Backend) String() string {
	switch b {
	case BackendAuto:
		return "Auto"
	case BackendLegacy:
		return "Legacy"
	case BackendHarfBuzz:
		return "HarfBuzz"
	case BackendComplex:
		return "Complex"
	default:
		return unknownStr
	}
}

// valid reports whether b is one of the declared backends.
func (b Backend) valid() bool {
	return b >= BackendAuto && b <= BackendComplex
}

// resolve returns the concrete backend for a collection level.
func (b Backend) resolve(level font.LayoutLevel) Backend {
	if b != BackendAuto {
		return b
	}
	if level == font.LevelFull {
		return BackendComplex
	}
	return BackendLegacy
}

// fontLevel returns the layout level a single font supports.
func fontLevel(f font.Font) font.LayoutLevel {
	if f.Typeface() != nil {
		return font.LevelFull
	}
	return font.LevelLegacy
}

// Shared backends. Shapers keep no state between calls.
var (
	legacyShaper   = shape.NewLegacy()
	harfbuzzShaper = shape.NewHarfBuzz()
	complexShaper  = shape.NewComplex()
)

// shapeCollection shapes text with a concrete backend.
func shapeCollection(b Backend, c font.Collection, text []rune) (*shape.Result, error) {
	switch b {
	case BackendLegacy:
		return legacyShaper.Shape(c.PrimaryFont(0), text)
	case BackendHarfBuzz:
		return harfbuzzShaper.Shape(c.PrimaryFont(0), text)
	case BackendComplex:
		return complexShaper.ShapeCollection(c, text)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownBackend, int(b))
	}
}

// metric returns the line metric for a concrete backend. Tracking and
// padding are converted from pixels to font units.
func (b Backend) metric(s Settings, scale float64) linebreak.Metric {
	tracking := s.Tracking / scale
	switch {
	case b == BackendComplex:
		return linebreak.Bidi{Tracking: tracking}
	case b == BackendLegacy && s.Monospace:
		return linebreak.Monospace{Tracking: tracking, Padding: s.Padding / scale}
	default:
		return linebreak.Proportional{Tracking: tracking}
	}
}
