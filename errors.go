package textlayout

import "errors"

// Sentinel errors for the textlayout package.
var (
	// ErrNilCollection is returned when a nil or empty font collection is
	// passed to CreateLayout.
	ErrNilCollection = errors.New("textlayout: nil or empty font collection")

	// ErrNilFont is returned when ShapeText or ComputeLayout get a nil font.
	ErrNilFont = errors.New("textlayout: nil font")

	// ErrNilResult is returned when ComputeLayout gets a nil shaping result.
	ErrNilResult = errors.New("textlayout: nil shaping result")

	// ErrUnknownBackend is returned for Backend values outside the
	// declared constants.
	ErrUnknownBackend = errors.New("textlayout: unknown backend")
)
