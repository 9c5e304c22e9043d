// Package font defines the font capability consumed by the shaping and
// layout packages, together with an SFNT (TrueType/OpenType) implementation.
//
// The layout core never parses font files itself. It asks a [Font] for glyph
// metrics given a codepoint and a scale, and asks a [Collection] which font
// is primary and whether full (bidirectional, complex-script) layout is
// available.
//
//	f, err := font.NewFont(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, _ := font.NewCollection(font.LevelFull, f)
//
// All values returned by a Font at scale 1.0 are in the font's unscaled
// unit space. [Font.ScaleForPixelSize] converts a requested pixel size into
// the factor callers multiply by afterwards.
package font
