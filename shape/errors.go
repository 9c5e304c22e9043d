package shape

import (
	"errors"
	"fmt"
)

// Sentinel errors for the shape package.
var (
	// ErrNilFont is returned when Shape is called without a font.
	ErrNilFont = errors.New("shape: nil font")

	// ErrNilCollection is returned when ShapeCollection is called without a collection.
	ErrNilCollection = errors.New("shape: nil font collection")

	// ErrUnsupportedFont is returned when a font cannot be used by a backend,
	// e.g. a font without a HarfBuzz typeface passed to the HarfBuzz backend.
	ErrUnsupportedFont = errors.New("shape: unsupported font")

	// ErrShapeFailed is returned when the complex layout engine produces
	// output that cannot be mapped back to the caller's fonts.
	ErrShapeFailed = errors.New("shape: shaping failed")
)

// RunPartitionError is returned by Result.Validate when the runs do not
// partition the glyph slice.
type RunPartitionError struct {
	Run      int
	Start    int
	Expected int
}

func (e *RunPartitionError) Error() string {
	return fmt.Sprintf("shape: run %d starts at glyph %d, expected %d", e.Run, e.Start, e.Expected)
}
