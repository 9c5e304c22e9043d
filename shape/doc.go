// Package shape converts codepoint sequences into positioned glyphs.
//
// Three interchangeable backends implement the [Shaper] interface:
//
//   - [Legacy]: one glyph per codepoint, looked up directly in the font, no
//     ligatures and no complex scripts. Missing glyphs are replaced with a
//     fallback codepoint ('~'), then with a zero-sized placeholder.
//   - [HarfBuzz]: splits the text into runs of uniform direction and script
//     ([Segmenter]) and shapes each run with go-text/typesetting's HarfBuzz
//     port. One codepoint may produce several glyphs and vice versa.
//   - [Complex]: delegates bidi, script and font-fallback segmentation to
//     the go-text segmenter, shapes each run and reorders runs visually.
//
// All backends produce the same [Result]: glyphs positioned on an infinite
// single line in the font's unscaled unit space, and runs partitioning the
// glyph slice. Shapers keep no state between calls and are safe for
// concurrent use.
package shape
