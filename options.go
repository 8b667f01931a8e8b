package pagediff

import (
	"image/color"
	"log/slog"

	"github.com/tsawler/pagediff/align"
	"github.com/tsawler/pagediff/render"
	"github.com/tsawler/pagediff/report"
	"github.com/tsawler/pagediff/text"
)

// Options holds configuration for a comparison run.
type Options struct {
	// Rendering and artifacts
	dpi       float64
	outputDir string
	format    align.Format
	highlight color.Color

	// Text
	segment        text.SegmentConfig
	minVisibleSize int
	joinWrapped    bool

	// OCR fallback for pages without a text layer
	ocr         bool
	ocrLanguage string

	validate bool
	palette  *report.Palette
	logger   *slog.Logger
	opener   Opener
}

// defaultOptions returns the default comparison options.
func defaultOptions() Options {
	return Options{
		dpi:            render.DefaultDPI,
		outputDir:      "output",
		format:         align.PNG,
		highlight:      align.DefaultHighlight,
		segment:        text.DefaultSegmentConfig(),
		minVisibleSize: 1,
		joinWrapped:    true,
		ocrLanguage:    "eng",
		logger:         slog.Default(),
	}
}

// clone creates a copy of Options. A custom palette is copied so later
// changes to the caller's value do not leak in.
func (o Options) clone() Options {
	newOpts := o
	if o.palette != nil {
		p := *o.palette
		newOpts.palette = &p
	}
	return newOpts
}
