package align

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is the image file format of stored artifacts.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ParseFormat converts a format name or file extension ("png", ".tif", ...)
// to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "", "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return "", fmt.Errorf("align: unsupported image format %q", s)
	}
}

// Ext returns the file extension without the leading dot.
func (f Format) Ext() string {
	if f == "" {
		return string(PNG)
	}
	return string(f)
}

// Encode writes img to w in format f.
func (f Format) Encode(w io.Writer, img image.Image) error {
	switch f {
	case PNG, "":
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("align: unsupported image format %q", string(f))
	}
}

// Paths are the files written for one compared page.
type Paths struct {
	Source string
	Target string
	Diff   string
}

// Slice returns the paths in source, target, diff order.
func (p Paths) Slice() []string {
	return []string{p.Source, p.Target, p.Diff}
}

// Store writes comparison artifacts below Root as
//
//	<Root>/item_<row+1>/alignment/page_<page>/{img1,img2,diff}.<ext>
//	<Root>/item_<row+1>/content/page_<page>/{img1,img2}.<ext>
type Store struct {
	Root   string
	Format Format
}

// NewStore returns a Store writing PNG files below root.
func NewStore(root string) *Store {
	return &Store{Root: root, Format: PNG}
}

// Dir returns the directory used for a row (0-based) and page (1-based).
func (s *Store) Dir(row, page int) string {
	return s.dir("alignment", row, page)
}

// ContentDir returns the directory of the annotated pages of a row (0-based)
// and page (1-based).
func (s *Store) ContentDir(row, page int) string {
	return s.dir("content", row, page)
}

func (s *Store) dir(kind string, row, page int) string {
	return filepath.Join(s.Root, fmt.Sprintf("item_%d", row+1), kind, fmt.Sprintf("page_%d", page))
}

// Save writes the three images of an outcome. When a page exists on one side
// only, its image is written to all three files so the row stays complete.
func (s *Store) Save(row, page int, o Outcome) (Paths, error) {
	available := o.Available()
	if available == nil {
		return Paths{}, ErrNoContent
	}

	dir := s.Dir(row, page)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Paths{}, fmt.Errorf("align: create %s: %w", dir, err)
	}

	ext := s.Format.Ext()
	paths := Paths{
		Source: filepath.Join(dir, "img1."+ext),
		Target: filepath.Join(dir, "img2."+ext),
		Diff:   filepath.Join(dir, "diff."+ext),
	}

	images := []image.Image{o.Source, o.Target, o.Diff}
	if !o.Complete() {
		images = []image.Image{available, available, available}
	}

	for i, path := range paths.Slice() {
		if err := s.write(path, images[i]); err != nil {
			return Paths{}, err
		}
	}
	return paths, nil
}

// SaveContent writes annotated source and target pages as img1 and img2 and
// returns the written paths in that order. A nil side is skipped.
func (s *Store) SaveContent(row, page int, source, target image.Image) ([]string, error) {
	if source == nil && target == nil {
		return nil, ErrNoContent
	}

	dir := s.ContentDir(row, page)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("align: create %s: %w", dir, err)
	}

	ext := s.Format.Ext()
	var paths []string
	for i, img := range []image.Image{source, target} {
		if img == nil {
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("img%d.%s", i+1, ext))
		if err := s.write(path, img); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func (s *Store) write(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("align: create %s: %w", path, err)
	}
	if err := s.Format.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("align: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("align: close %s: %w", path, err)
	}
	return nil
}
