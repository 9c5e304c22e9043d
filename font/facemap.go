package font

import (
	gotext "github.com/go-text/typesetting/font"
)

// FaceMap maps the faces handed to go-text back to collection fonts.
//
// go-text faces carry mutable glyph caches, so a FaceMap must be created per
// layout call and never shared between goroutines. It implements the
// shaping.Fontmap interface expected by the go-text segmenter.
type FaceMap struct {
	faces []*gotext.Face
	fonts []Font
	index map[*gotext.Face]Font
}

// NewFaceMap creates a FaceMap for every shapeable font of c.
// Fonts without a typeface are skipped; the result may be empty.
func NewFaceMap(c Collection) *FaceMap {
	m := &FaceMap{
		faces: make([]*gotext.Face, 0, c.Len()),
		fonts: make([]Font, 0, c.Len()),
		index: make(map[*gotext.Face]Font, c.Len()),
	}
	for i := 0; i < c.Len(); i++ {
		f := c.PrimaryFont(i)
		if f == nil || f.Typeface() == nil {
			continue
		}
		face := gotext.NewFace(f.Typeface())
		m.faces = append(m.faces, face)
		m.fonts = append(m.fonts, f)
		m.index[face] = f
	}
	return m
}

// Len returns the number of faces in the map.
func (m *FaceMap) Len() int {
	return len(m.faces)
}

// Primary returns the face of the first shapeable font, or nil.
func (m *FaceMap) Primary() *gotext.Face {
	if len(m.faces) == 0 {
		return nil
	}
	return m.faces[0]
}

// PrimaryFont returns the font of the primary face, or nil.
func (m *FaceMap) PrimaryFont() Font {
	if len(m.fonts) == 0 {
		return nil
	}
	return m.fonts[0]
}

// ResolveFace returns the first face covering r.
// If no face has the glyph, the primary face is returned.
func (m *FaceMap) ResolveFace(r rune) *gotext.Face {
	for _, face := range m.faces {
		if _, ok := face.NominalGlyph(r); ok {
			return face
		}
	}
	return m.Primary()
}

// Resolve returns the collection font a go-text face was created for.
func (m *FaceMap) Resolve(face *gotext.Face) (Font, bool) {
	f, ok := m.index[face]
	return f, ok
}
