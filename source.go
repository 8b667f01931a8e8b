package pagediff

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/tsawler/pagediff/extract"
	"github.com/tsawler/pagediff/inspect"
	"github.com/tsawler/pagediff/render"
	"github.com/tsawler/pagediff/text"
)

// ErrPageMissing is returned by a Document for a page it does not have.
var ErrPageMissing = errors.New("pagediff: page missing")

// TextSource supplies the word chunks of a page.
type TextSource interface {
	NumPage() int
	Chunks(page int) ([]text.Chunk, error)
}

// PageRenderer supplies the raster image of a page.
type PageRenderer interface {
	Page(page int) (image.Image, error)
}

// pngRenderer is implemented by documents that render PNG data directly.
type pngRenderer interface {
	PNG(page int) ([]byte, error)
}

// Document is an open document. Page numbers are 1-based.
type Document interface {
	TextSource
	PageRenderer
	io.Closer
}

// Opener opens documents by path.
type Opener interface {
	Open(path string) (Document, error)
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(path string) (Document, error)

// Open calls f(path).
func (f OpenerFunc) Open(path string) (Document, error) {
	return f(path)
}

// pdfOpener opens PDF files with the extract and render packages.
type pdfOpener struct {
	dpi      float64
	segment  text.SegmentConfig
	validate bool
}

func (o pdfOpener) Open(path string) (Document, error) {
	if o.validate {
		if err := inspect.Validate(path); err != nil {
			return nil, err
		}
	}

	pages, err := inspect.PageCount(path)
	if err != nil {
		return nil, err
	}

	ext, err := extract.Open(path)
	if err != nil {
		return nil, err
	}
	ext.WithSegmentConfig(o.segment)

	ren, err := render.Open(path, o.dpi)
	if err != nil {
		ext.Close()
		return nil, err
	}

	return &pdfDocument{pages: pages, text: ext, images: ren}, nil
}

// pdfDocument joins a text extractor and a renderer over the same file.
type pdfDocument struct {
	pages  int
	text   *extract.Document
	images *render.Document
}

func (d *pdfDocument) NumPage() int {
	return d.pages
}

func (d *pdfDocument) Chunks(page int) ([]text.Chunk, error) {
	chunks, err := d.text.Chunks(page)
	if errors.Is(err, extract.ErrPageMissing) {
		return nil, fmt.Errorf("%w: %w", ErrPageMissing, err)
	}
	return chunks, err
}

func (d *pdfDocument) Page(page int) (image.Image, error) {
	img, err := d.images.Page(page)
	if errors.Is(err, render.ErrPageMissing) {
		return nil, fmt.Errorf("%w: %w", ErrPageMissing, err)
	}
	return img, err
}

func (d *pdfDocument) PNG(page int) ([]byte, error) {
	data, err := d.images.PNG(page)
	if errors.Is(err, render.ErrPageMissing) {
		return nil, fmt.Errorf("%w: %w", ErrPageMissing, err)
	}
	return data, err
}

func (d *pdfDocument) Close() error {
	return errors.Join(d.text.Close(), d.images.Close())
}
