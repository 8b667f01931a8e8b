package ocr

import (
	"image"
	"unicode/utf8"

	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/text"
)

// FontName is the font name given to recognized characters. Every OCR word
// shares it, so font comparison between two scanned pages reduces to size.
const FontName = "OCR"

// Options configures recognition.
type Options struct {
	// Language is a Tesseract language list such as "eng" or "eng+fra".
	Language string

	// DPI is the resolution the page image was rendered at. Box heights are
	// converted from pixels to points with it.
	DPI float64

	// MinConfidence drops words recognized with a lower confidence (0-100).
	MinConfidence float64
}

func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = "eng"
	}
	if o.DPI <= 0 {
		o.DPI = 72
	}
	return o
}

// Box is one recognized word in image pixel coordinates.
type Box struct {
	Rect       image.Rectangle
	Word       string
	Confidence float64
}

// Chunks converts recognized word boxes into chunks. Each character gets an
// equal share of its word's width; the baseline is the bottom of the box.
func Chunks(boxes []Box, opts Options) []text.Chunk {
	opts = opts.withDefaults()
	scale := 72 / opts.DPI

	var chunks []text.Chunk
	for _, b := range boxes {
		n := utf8.RuneCountInString(b.Word)
		if n == 0 || b.Confidence < opts.MinConfidence {
			continue
		}

		width := float64(b.Rect.Dx()) * scale / float64(n)
		height := float64(b.Rect.Dy()) * scale
		x0 := float64(b.Rect.Min.X) * scale
		y := float64(b.Rect.Max.Y) * scale

		runs := make([]model.CharacterRun, 0, n)
		i := 0
		for _, ch := range b.Word {
			runs = append(runs, model.CharacterRun{
				Char:     ch,
				X:        x0 + float64(i)*width,
				Y:        y,
				Width:    width,
				Height:   height,
				FontName: FontName,
				FontSize: height,
			})
			i++
		}
		chunks = append(chunks, text.Chunk{Text: b.Word, Runs: runs})
	}
	return chunks
}
