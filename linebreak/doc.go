// Package linebreak breaks a shaped glyph sequence into lines.
//
// The breaker scans forward from one breaking codepoint (space, zero-width
// space, newline) to the next and measures each candidate line with a
// [Metric]. A candidate that overflows the maximum width rewinds to the last
// candidate that fit, so words are never split. A single word wider than the
// maximum is accepted on a line of its own.
//
// The breaker is independent of the shaping backend: it only reads
// [shape.Glyph] positions and sizes through the metric it is given.
//
// # Example
//
//	res, _ := shape.NewLegacy().Shape(f, []rune("Hello World"))
//	lines, width := linebreak.Layout(res.Glyphs, 200, linebreak.Proportional{}, false)
package linebreak
