package font

// LayoutLevel describes which layout backends a collection supports.
type LayoutLevel int

const (
	// LevelLegacy supports one glyph per codepoint layout only.
	LevelLegacy LayoutLevel = iota
	// LevelFull supports bidirectional and complex-script layout.
	LevelFull
)

// String returns the string representation of the layout level.
func (l LayoutLevel) String() string {
	switch l {
	case LevelLegacy:
		return "Legacy"
	case LevelFull:
		return "Full"
	default:
		return unknownStr
	}
}

// Collection is an ordered set of fonts used together for layout.
// The first font is the primary font; the rest provide fallback coverage.
type Collection interface {
	// LayoutLevel reports the layout capability of the collection.
	LayoutLevel() LayoutLevel

	// PrimaryFont returns the font at index, or nil if out of range.
	PrimaryFont(index int) Font

	// Len returns the number of fonts in the collection.
	Len() int
}

// FontCollection is the default Collection implementation.
// FontCollection is immutable and safe for concurrent use.
type FontCollection struct {
	level LayoutLevel
	fonts []Font
}

// NewCollection creates a collection from fonts in fallback order.
// Returns error if fonts is empty or contains nil.
func NewCollection(level LayoutLevel, fonts ...Font) (*FontCollection, error) {
	if len(fonts) == 0 {
		return nil, ErrEmptyCollection
	}
	for _, f := range fonts {
		if f == nil {
			return nil, ErrNilFont
		}
	}

	// A full collection needs every font to be shapeable.
	if level == LevelFull {
		for _, f := range fonts {
			if f.Typeface() == nil {
				level = LevelLegacy
				break
			}
		}
	}

	return &FontCollection{
		level: level,
		fonts: append([]Font(nil), fonts...),
	}, nil
}

// LayoutLevel implements Collection.LayoutLevel.
func (c *FontCollection) LayoutLevel() LayoutLevel {
	return c.level
}

// PrimaryFont implements Collection.PrimaryFont.
func (c *FontCollection) PrimaryFont(index int) Font {
	if index < 0 || index >= len(c.fonts) {
		return nil
	}
	return c.fonts[index]
}

// Len implements Collection.Len.
func (c *FontCollection) Len() int {
	return len(c.fonts)
}
