// Package render rasterizes PDF pages.
package render

import (
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/gen2brain/go-fitz"
)

// ErrPageMissing is returned for a page number outside the document.
var ErrPageMissing = errors.New("render: page does not exist")

// DefaultDPI is the resolution used when none is given.
const DefaultDPI = 100.0

// Document is an open document ready for rendering.
type Document struct {
	mu  sync.Mutex
	doc *fitz.Document
	dpi float64
}

// Open opens the document at path for rendering at dpi. A dpi of zero or
// less selects DefaultDPI.
func Open(path string, dpi float64) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("render: open %s: %w", path, err)
	}
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Document{doc: doc, dpi: dpi}, nil
}

// NumPage returns the number of pages.
func (d *Document) NumPage() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.NumPage()
}

// Page renders a 1-based page.
func (d *Document) Page(page int) (image.Image, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if page < 1 || page > d.doc.NumPage() {
		return nil, fmt.Errorf("%w: %d", ErrPageMissing, page)
	}
	img, err := d.doc.ImageDPI(page-1, d.dpi)
	if err != nil {
		return nil, fmt.Errorf("render: page %d: %w", page, err)
	}
	return img, nil
}

// PNG renders a 1-based page and returns it PNG-encoded.
func (d *Document) PNG(page int) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if page < 1 || page > d.doc.NumPage() {
		return nil, fmt.Errorf("%w: %d", ErrPageMissing, page)
	}
	data, err := d.doc.ImagePNG(page-1, d.dpi)
	if err != nil {
		return nil, fmt.Errorf("render: page %d: %w", page, err)
	}
	return data, nil
}

// Close releases the document.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.doc.Close()
}
