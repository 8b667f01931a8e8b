// Package extract reads per-character text from PDF pages and groups it into
// word chunks.
//
// Coordinates are converted to a top-down system: Y grows from the top of the
// page, and a character's Y is its baseline.
package extract

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/text"
)

var (
	// ErrPageMissing is returned for a page number outside the document.
	ErrPageMissing = errors.New("extract: page does not exist")

	// ErrUnreadable is returned when a page's content stream cannot be read.
	ErrUnreadable = errors.New("extract: unreadable page content")
)

// defaultPageHeight is US Letter, used when a page has no usable MediaBox.
const defaultPageHeight = 792.0

// Document is an open PDF file.
type Document struct {
	f       *os.File
	r       *pdf.Reader
	segment text.SegmentConfig
}

// Open opens the PDF at path.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("extract: open %s: %w", path, err)
	}
	return &Document{f: f, r: r, segment: text.DefaultSegmentConfig()}, nil
}

// WithSegmentConfig replaces the word segmentation settings.
func (d *Document) WithSegmentConfig(cfg text.SegmentConfig) *Document {
	d.segment = cfg
	return d
}

// NumPage returns the number of pages.
func (d *Document) NumPage() int {
	return d.r.NumPage()
}

// Close closes the underlying file.
func (d *Document) Close() error {
	return d.f.Close()
}

// Runs returns the characters of a 1-based page in content-stream order.
func (d *Document) Runs(page int) (runs []model.CharacterRun, err error) {
	if page < 1 || page > d.r.NumPage() {
		return nil, fmt.Errorf("%w: %d", ErrPageMissing, page)
	}
	p := d.r.Page(page)
	if p.V.IsNull() {
		return nil, fmt.Errorf("%w: %d", ErrPageMissing, page)
	}

	// The reader panics on malformed content streams
	defer func() {
		if r := recover(); r != nil {
			runs = nil
			err = fmt.Errorf("%w: page %d: %v", ErrUnreadable, page, r)
		}
	}()

	height := pageHeight(p.V)
	for _, t := range p.Content().Text {
		runs = append(runs, split(t, height)...)
	}
	return runs, nil
}

// Chunks returns the word chunks of a 1-based page.
func (d *Document) Chunks(page int) ([]text.Chunk, error) {
	runs, err := d.Runs(page)
	if err != nil {
		return nil, err
	}
	return text.Segment(runs, d.segment), nil
}

// split converts one text item to character runs. Items carrying several
// characters share their advance width evenly.
func split(t pdf.Text, height float64) []model.CharacterRun {
	n := utf8.RuneCountInString(t.S)
	if n == 0 {
		return nil
	}

	width := t.W / float64(n)
	runs := make([]model.CharacterRun, 0, n)
	i := 0
	for _, ch := range t.S {
		runs = append(runs, model.CharacterRun{
			Char:     ch,
			X:        t.X + float64(i)*width,
			Y:        height - t.Y,
			Width:    width,
			Height:   t.FontSize,
			FontName: t.Font,
			FontSize: t.FontSize,
		})
		i++
	}
	return runs
}

// pageHeight returns the MediaBox height of a page, following the Parent
// chain for inherited boxes.
func pageHeight(v pdf.Value) float64 {
	for depth := 0; depth < 32 && !v.IsNull(); depth++ {
		box := v.Key("MediaBox")
		if box.Kind() == pdf.Array && box.Len() == 4 {
			if h := box.Index(3).Float64() - box.Index(1).Float64(); h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}
