package model

// CharacterRun is one rendered character together with its position and the
// font it was drawn with. Runs are produced by the text extraction layer and
// are never modified afterwards.
type CharacterRun struct {
	Char rune

	// Position of the glyph origin in top-down page coordinates. Y is the
	// baseline.
	X, Y float64

	Width  float64
	Height float64

	// FontName is the raw font name as reported by the document, including
	// any subset prefix (e.g. "ABCDEF+Arial-BoldMT").
	FontName string
	FontSize float64

	// Optional font descriptor hints; zero means unknown.
	FontWeight  float64
	ItalicAngle float64
}

// Bounds returns the bounding box of the glyph, which rises Height above
// the baseline.
func (r CharacterRun) Bounds() BBox {
	return NewBBox(r.X, r.Y-r.Height, r.Width, r.Height)
}

// IntSize returns the font size as a whole number of points. Sizes are
// truncated so that sub-point rendering jitter (11.4 vs 11.6) compares equal.
func (r CharacterRun) IntSize() int {
	return int(r.FontSize)
}
