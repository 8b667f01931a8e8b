package align

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// MarkWidth is the outline thickness of a mark in pixels.
const MarkWidth = 2

// Mark is a rectangle to outline on a page image, in pixel coordinates.
type Mark struct {
	Rect  image.Rectangle
	Color color.Color
}

// Annotate returns a copy of page with every mark outlined. Marks are clipped
// to the page; a nil Color draws in DefaultHighlight. page is not modified.
func Annotate(page image.Image, marks []Mark) *image.RGBA {
	b := page.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), page, b.Min, draw.Src)

	for _, m := range marks {
		r := m.Rect.Canon().Intersect(dst.Bounds())
		if r.Empty() {
			continue
		}
		c := m.Color
		if c == nil {
			c = DefaultHighlight
		}
		src := image.NewUniform(c)
		w := min(MarkWidth, r.Dx(), r.Dy())

		edges := [...]image.Rectangle{
			image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w),
			image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y),
			image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y),
			image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y),
		}
		for _, e := range edges {
			draw.Draw(dst, e, src, image.Point{}, draw.Over)
		}
	}
	return dst
}
