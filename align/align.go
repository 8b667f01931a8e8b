// Package align produces pixel-level difference images for pairs of rendered
// pages and stores them next to the page images they were computed from.
package align

import (
	"errors"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ErrNoContent is returned when neither page image is present.
var ErrNoContent = errors.New("align: no content to compare")

// DefaultHighlight is the color of pixels that differ between two pages.
var DefaultHighlight = color.RGBA{R: 255, A: 255}

// Outcome is the result of comparing two page images. Diff is nil unless both
// pages were present.
type Outcome struct {
	Source image.Image
	Target image.Image
	Diff   image.Image

	// DiffPixels is the number of highlighted pixels in Diff.
	DiffPixels int
}

// Complete reports whether both pages were present.
func (o Outcome) Complete() bool {
	return o.Source != nil && o.Target != nil
}

// Identical reports whether both pages were present and no pixel differed
// within their common area.
func (o Outcome) Identical() bool {
	return o.Complete() && o.DiffPixels == 0
}

// Available returns the image to stand in for every slot of an incomplete
// outcome: the source if present, else the target.
func (o Outcome) Available() image.Image {
	if o.Source != nil {
		return o.Source
	}
	return o.Target
}

// Comparer diffs page images.
type Comparer struct {
	Highlight color.Color
}

// NewComparer returns a Comparer that marks differences in opaque red.
func NewComparer() *Comparer {
	return &Comparer{Highlight: DefaultHighlight}
}

// Compare diffs two page images. Either image may be nil when the page only
// exists on one side; the outcome then carries no diff image.
//
// The diff image covers the common area of both pages (the smaller width by
// the smaller height). Each pixel that differs between the pages is painted
// with the highlight color; all others are copied from the source page.
func (c *Comparer) Compare(source, target image.Image) (Outcome, error) {
	if source == nil && target == nil {
		return Outcome{}, ErrNoContent
	}

	out := Outcome{Source: source, Target: target}
	if source == nil || target == nil {
		return out, nil
	}

	src, tgt := toRGBA(source), toRGBA(target)
	w := min(src.Rect.Dx(), tgt.Rect.Dx())
	h := min(src.Rect.Dy(), tgt.Rect.Dy())

	highlight := color.RGBAModel.Convert(c.highlight()).(color.RGBA)
	diff := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			so := src.PixOffset(x, y)
			to := tgt.PixOffset(x, y)
			do := diff.PixOffset(x, y)

			sp := src.Pix[so : so+4 : so+4]
			tp := tgt.Pix[to : to+4 : to+4]
			if sp[0] != tp[0] || sp[1] != tp[1] || sp[2] != tp[2] || sp[3] != tp[3] {
				diff.Pix[do+0] = highlight.R
				diff.Pix[do+1] = highlight.G
				diff.Pix[do+2] = highlight.B
				diff.Pix[do+3] = highlight.A
				out.DiffPixels++
				continue
			}
			copy(diff.Pix[do:do+4], sp)
		}
	}

	out.Diff = diff
	return out, nil
}

func (c *Comparer) highlight() color.Color {
	if c.Highlight == nil {
		return DefaultHighlight
	}
	return c.Highlight
}

// toRGBA returns img as an RGBA image whose bounds start at the origin.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
