package classify

import (
	"reflect"
	"testing"
)

func TestIsWhitespace(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{' ', true},
		{'\u200B', true},
		{'\t', true},
		{'\u2003', true}, // em space
		{'\u3000', true}, // ideographic space
		{'\u00A0', false},
		{'\u202F', false},
		{'\n', false},
		{'a', false},
		{0, false},
	}
	for _, tt := range tests {
		if got := IsWhitespace(tt.r); got != tt.want {
			t.Errorf("IsWhitespace(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsBreakingWhitespace(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
	}{
		{' ', true},
		{'\u200B', true},
		{'\n', true},
		{'\u2028', true},
		{'\u2029', true},
		{0, true},
		{'\t', false},
		{'\u00A0', false},
		{'-', false},
		{'x', false},
	}
	for _, tt := range tests {
		if got := IsBreakingWhitespace(tt.r); got != tt.want {
			t.Errorf("IsBreakingWhitespace(%U) = %v, want %v", tt.r, got, tt.want)
		}
		if got := IsBreaking(tt.r); got != tt.want {
			t.Errorf("IsBreaking(%U) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestIsNewline(t *testing.T) {
	for _, r := range []rune{'\n', '\u2028', '\u2029'} {
		if !IsNewline(r) {
			t.Errorf("IsNewline(%U) = false", r)
		}
	}
	for _, r := range []rune{'\r', ' ', 0, 'n'} {
		if IsNewline(r) {
			t.Errorf("IsNewline(%U) = true", r)
		}
	}
}

func TestNextCodepoint(t *testing.T) {
	tests := []struct {
		name     string
		in       []byte
		wantRune rune
		wantSize int
	}{
		{"end of input", nil, 0, 0},
		{"ascii", []byte("ab"), 'a', 1},
		{"two bytes", []byte("\u00E9"), '\u00E9', 2},
		{"three bytes", []byte("\u200B"), '\u200B', 3},
		{"four bytes", []byte("\U0001F600"), '\U0001F600', 4},
		{"invalid", []byte{0xFF, 'a'}, '\uFFFD', 1},
		{"null byte", []byte{0}, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, size := NextCodepoint(tt.in)
			if r != tt.wantRune || size != tt.wantSize {
				t.Errorf("NextCodepoint() = (%U, %d), want (%U, %d)", r, size, tt.wantRune, tt.wantSize)
			}
		})
	}
}

func TestCodepoints(t *testing.T) {
	in := "a\u00E9\u05D0 \U0001F600"
	want := []rune{'a', '\u00E9', '\u05D0', ' ', '\U0001F600'}
	if got := Codepoints([]byte(in)); !reflect.DeepEqual(got, want) {
		t.Errorf("Codepoints() = %U, want %U", got, want)
	}
	if got := CodepointsString(in); !reflect.DeepEqual(got, want) {
		t.Errorf("CodepointsString() = %U, want %U", got, want)
	}
	if got := Codepoints(nil); len(got) != 0 {
		t.Errorf("Codepoints(nil) = %U, want empty", got)
	}
}
