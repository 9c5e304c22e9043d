package font

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func loadGoRegular(t testing.TB) *SFNT {
	t.Helper()
	f, err := NewFont(goregular.TTF)
	if err != nil {
		t.Fatalf("NewFont(goregular) error = %v", err)
	}
	return f
}

func TestNewFontErrors(t *testing.T) {
	if _, err := NewFont(nil); !errors.Is(err, ErrEmptyFontData) {
		t.Errorf("NewFont(nil) error = %v, want ErrEmptyFontData", err)
	}
	if _, err := NewFont([]byte("not a font")); err == nil {
		t.Error("NewFont(garbage) succeeded")
	}
	if _, err := NewFontFromFile(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("NewFontFromFile(missing) succeeded")
	}
}

func TestNewFontFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := NewFontFromFile(path)
	if err != nil {
		t.Fatalf("NewFontFromFile() error = %v", err)
	}
	if f.Name() == "" {
		t.Error("Name() is empty")
	}
}

func TestSFNTName(t *testing.T) {
	f := loadGoRegular(t)
	if f.Name() != "Go" {
		t.Errorf("Name() = %q, want %q", f.Name(), "Go")
	}

	named, err := NewFont(goregular.TTF, WithName("Body"))
	if err != nil {
		t.Fatal(err)
	}
	if named.Name() != "Body" {
		t.Errorf("Name() with WithName = %q, want %q", named.Name(), "Body")
	}
}

func TestSFNTScaleForPixelSize(t *testing.T) {
	f := loadGoRegular(t)
	upem := f.UnitsPerEm()
	if upem <= 0 {
		t.Fatalf("UnitsPerEm() = %v", upem)
	}

	tests := []struct {
		size float64
		want float64
	}{
		{16, 16 / upem},
		{upem, 1},
		{0, 1},
		{-3, 1},
	}
	for _, tt := range tests {
		if got := f.ScaleForPixelSize(tt.size); got != tt.want {
			t.Errorf("ScaleForPixelSize(%v) = %v, want %v", tt.size, got, tt.want)
		}
	}
}

func TestSFNTGlyph(t *testing.T) {
	f := loadGoRegular(t)

	g, err := f.Glyph('A', 1, GlyphOptions{})
	if err != nil {
		t.Fatalf("Glyph('A') error = %v", err)
	}
	if g.Index == 0 || g.Advance <= 0 || g.Width <= 0 || g.Height <= 0 {
		t.Errorf("Glyph('A') = %+v, want non-empty metrics", g)
	}
	if g.Codepoint != 'A' {
		t.Errorf("Codepoint = %U, want 'A'", g.Codepoint)
	}

	// Cached lookups return identical metrics.
	again, err := f.Glyph('A', 1, GlyphOptions{})
	if err != nil || again != g {
		t.Errorf("cached Glyph('A') = %+v, %v, want %+v", again, err, g)
	}

	half, err := f.Glyph('A', 0.5, GlyphOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(half.Advance-g.Advance/2) > 1 {
		t.Errorf("advance at scale 0.5 = %v, want about %v", half.Advance, g.Advance/2)
	}

	space, err := f.Glyph(' ', 1, GlyphOptions{})
	if err != nil {
		t.Fatalf("Glyph(' ') error = %v", err)
	}
	if space.Advance <= 0 || space.Width != 0 {
		t.Errorf("Glyph(' ') = %+v, want advance without ink", space)
	}
}

func TestSFNTGlyphNotFound(t *testing.T) {
	f := loadGoRegular(t)
	for range 2 {
		if _, err := f.Glyph('\u4E2D', 1, GlyphOptions{}); !errors.Is(err, ErrGlyphNotFound) {
			t.Errorf("Glyph(U+4E2D) error = %v, want ErrGlyphNotFound", err)
		}
	}
	if f.HasGlyph('\u4E2D') {
		t.Error("HasGlyph(U+4E2D) = true")
	}
	if !f.HasGlyph('a') {
		t.Error("HasGlyph('a') = false")
	}
}

func TestSFNTAscentDescent(t *testing.T) {
	f := loadGoRegular(t)
	asc, desc := f.Ascent(1), f.Descent(1)
	if asc <= 0 || desc <= 0 {
		t.Fatalf("Ascent/Descent = %v/%v, want positive", asc, desc)
	}
	if asc < desc {
		t.Errorf("Ascent %v < Descent %v", asc, desc)
	}
	if got := f.Ascent(2); math.Abs(got-2*asc) > 1 {
		t.Errorf("Ascent(2) = %v, want about %v", got, 2*asc)
	}
}

func TestSFNTGlyphBounds(t *testing.T) {
	f := loadGoRegular(t)
	g, err := f.Glyph('H', 1, GlyphOptions{})
	if err != nil {
		t.Fatal(err)
	}

	r, ok := f.GlyphBounds(g.Index)
	if !ok {
		t.Fatal("GlyphBounds('H') not found")
	}
	if r.Width() != g.Width || r.Height() != g.Height {
		t.Errorf("GlyphBounds = %+v, want %vx%v", r, g.Width, g.Height)
	}
	if r.MinX != g.LeftBearing {
		t.Errorf("MinX = %v, want LeftBearing %v", r.MinX, g.LeftBearing)
	}
	// y-up: 'H' sits on the baseline.
	if r.MaxY <= 0 || r.MinY < -1 {
		t.Errorf("GlyphBounds('H') = %+v, want a box above the baseline", r)
	}

	space, _ := f.Glyph(' ', 1, GlyphOptions{})
	if _, ok := f.GlyphBounds(space.Index); ok {
		t.Error("GlyphBounds(space) reported ink")
	}
}

func TestSFNTTypeface(t *testing.T) {
	f := loadGoRegular(t)
	tf := f.Typeface()
	if tf == nil {
		t.Fatal("Typeface() = nil for goregular")
	}
	if float64(tf.Upem()) != f.UnitsPerEm() {
		t.Errorf("typeface upem = %d, want %v", tf.Upem(), f.UnitsPerEm())
	}
}

func TestSFNTConcurrentGlyph(t *testing.T) {
	f := loadGoRegular(t)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, r := range "The quick brown fox" {
				if _, err := f.Glyph(r, 1, GlyphOptions{}); err != nil {
					t.Errorf("Glyph(%q) error = %v", r, err)
				}
			}
		}()
	}
	wg.Wait()
}

func TestHintingString(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
	}{
		{HintingNone, "None"},
		{HintingVertical, "Vertical"},
		{HintingFull, "Full"},
		{Hinting(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func BenchmarkSFNTGlyphCached(b *testing.B) {
	f := loadGoRegular(b)
	b.ReportAllocs()
	for b.Loop() {
		_, _ = f.Glyph('g', 1, GlyphOptions{})
	}
}
