// Package textlayout converts Unicode text into positioned glyphs broken
// into lines.
//
// # Overview
//
// Layout runs in two phases. Shaping maps codepoints to glyphs with one of
// three backends (package shape). Line breaking then splits the glyphs into
// lines no wider than a maximum width (package linebreak). CreateLayout
// runs both phases; ShapeText and ComputeLayout expose them separately.
//
// # Backends
//
//   - BackendLegacy: one glyph per codepoint, direct font lookups.
//   - BackendHarfBuzz: ligatures, kerning and complex scripts in one font.
//   - BackendComplex: HarfBuzz shaping with bidirectional reordering and
//     font fallback across a collection.
//
// BackendAuto picks BackendComplex for collections at font.LevelFull and
// BackendLegacy otherwise.
//
// # Units
//
// Glyph positions, line widths and metrics are in the primary font's
// units. Multiply by Layout.Scale to get pixels. Settings.MaxWidth,
// Settings.Tracking and Settings.Padding are given in pixels.
//
// # Quick Start
//
//	f, err := font.NewFont(goregular.TTF)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	c, _ := font.NewCollection(font.LevelFull, f)
//
//	l, err := textlayout.CreateLayoutString(c, "Hello, World!",
//	    textlayout.NewSettings(
//	        textlayout.WithSize(16),
//	        textlayout.WithMaxWidth(120),
//	        textlayout.WithLineBreak(true),
//	    ))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range l.Lines() {
//	    fmt.Println(line.Index, line.Count, line.Width*l.Scale())
//	}
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive diagnostics
// from all backends.
package textlayout
