package textlayout

// Settings configures a layout.
type Settings struct {
	// MaxWidth is the maximum line width in pixels.
	// Zero or negative means unconstrained.
	MaxWidth float64

	// AllowLineBreak enables soft breaks at whitespace. When false text is
	// split only at newlines and trailing spaces are measured, which keeps
	// the caret position of single-line fields stable.
	AllowLineBreak bool

	// Leading multiplies the natural line height.
	// Zero or negative means 1.
	Leading float64

	// Tracking is extra space between glyphs, in pixels.
	Tracking float64

	// Padding is added to the last glyph's advance by the monospace metric,
	// in pixels.
	Padding float64

	// Size is the requested font size in pixels. Zero or negative means
	// font units are used as pixels.
	Size float64

	// Monospace measures lines by advance instead of ink extent.
	// Only the legacy backend honours it.
	Monospace bool

	// Backend selects the shaping backend.
	Backend Backend
}

// DefaultSettings returns settings for a single unconstrained line with
// natural leading and automatic backend selection.
func DefaultSettings() Settings {
	return Settings{
		Leading: 1,
		Backend: BackendAuto,
	}
}

// Option configures Settings.
type Option func(*Settings)

// NewSettings returns DefaultSettings with opts applied.
func NewSettings(opts ...Option) Settings {
	s := DefaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// WithMaxWidth sets the maximum line width in pixels.
func WithMaxWidth(w float64) Option {
	return func(s *Settings) {
		s.MaxWidth = w
	}
}

// WithLineBreak enables or disables soft line breaks.
func WithLineBreak(allow bool) Option {
	return func(s *Settings) {
		s.AllowLineBreak = allow
	}
}

// WithLeading sets the line height multiplier.
func WithLeading(leading float64) Option {
	return func(s *Settings) {
		s.Leading = leading
	}
}

// WithTracking sets the extra space between glyphs in pixels.
func WithTracking(tracking float64) Option {
	return func(s *Settings) {
		s.Tracking = tracking
	}
}

// WithPadding sets the monospace padding in pixels.
func WithPadding(padding float64) Option {
	return func(s *Settings) {
		s.Padding = padding
	}
}

// WithSize sets the font size in pixels.
func WithSize(size float64) Option {
	return func(s *Settings) {
		s.Size = size
	}
}

// WithMonospace enables monospace measurement.
func WithMonospace(mono bool) Option {
	return func(s *Settings) {
		s.Monospace = mono
	}
}

// WithBackend selects the shaping backend.
func WithBackend(b Backend) Option {
	return func(s *Settings) {
		s.Backend = b
	}
}
