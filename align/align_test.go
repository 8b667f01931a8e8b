package align

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

func TestCompare_IdenticalImages(t *testing.T) {
	out, err := NewComparer().Compare(solid(4, 3, white), solid(4, 3, white))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if out.DiffPixels != 0 {
		t.Errorf("DiffPixels = %d, want 0", out.DiffPixels)
	}
	if !out.Identical() {
		t.Error("Identical() = false, want true")
	}
	if out.Diff == nil {
		t.Fatal("Diff is nil for a complete pair")
	}
	if got := out.Diff.Bounds(); got != image.Rect(0, 0, 4, 3) {
		t.Errorf("Diff bounds = %v", got)
	}
}

func TestCompare_HighlightsDifferences(t *testing.T) {
	src := solid(3, 3, white)
	tgt := solid(3, 3, white)
	tgt.Set(1, 1, color.Black)
	tgt.Set(2, 0, color.Black)

	out, err := NewComparer().Compare(src, tgt)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if out.DiffPixels != 2 {
		t.Errorf("DiffPixels = %d, want 2", out.DiffPixels)
	}

	want := color.RGBAModel.Convert(DefaultHighlight)
	if got := out.Diff.At(1, 1); got != want {
		t.Errorf("pixel (1,1) = %v, want highlight", got)
	}
	if got := out.Diff.At(0, 0); got != color.RGBAModel.Convert(white) {
		t.Errorf("pixel (0,0) = %v, want source pixel", got)
	}
}

func TestCompare_CustomHighlight(t *testing.T) {
	green := color.RGBA{G: 255, A: 255}
	tgt := solid(1, 1, color.Black)

	out, err := (&Comparer{Highlight: green}).Compare(solid(1, 1, white), tgt)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got := out.Diff.At(0, 0); got != green {
		t.Errorf("pixel = %v, want %v", got, green)
	}
}

func TestCompare_CommonArea(t *testing.T) {
	out, err := NewComparer().Compare(solid(10, 4, white), solid(6, 8, white))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if got := out.Diff.Bounds(); got != image.Rect(0, 0, 6, 4) {
		t.Errorf("Diff bounds = %v, want 6x4", got)
	}
}

func TestCompare_OffsetBounds(t *testing.T) {
	src := solid(4, 4, white)
	tgt := image.NewGray(image.Rect(10, 10, 14, 14))
	for i := range tgt.Pix {
		tgt.Pix[i] = 255
	}

	out, err := NewComparer().Compare(src, tgt)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if out.DiffPixels != 0 {
		t.Errorf("DiffPixels = %d, want 0 for equal content at different origins", out.DiffPixels)
	}
}

func TestCompare_OneSideMissing(t *testing.T) {
	img := solid(2, 2, white)

	tests := []struct {
		name     string
		src, tgt image.Image
	}{
		{"source only", img, nil},
		{"target only", nil, img},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewComparer().Compare(tt.src, tt.tgt)
			if err != nil {
				t.Fatalf("Compare: %v", err)
			}
			if out.Diff != nil {
				t.Error("Diff should be nil when a side is missing")
			}
			if out.Complete() {
				t.Error("Complete() = true, want false")
			}
			if out.Available() != img {
				t.Error("Available() did not return the present image")
			}
		})
	}
}

func TestCompare_NoContent(t *testing.T) {
	_, err := NewComparer().Compare(nil, nil)
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("err = %v, want ErrNoContent", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", PNG, false},
		{"png", PNG, false},
		{".PNG", PNG, false},
		{"bmp", BMP, false},
		{"tif", TIFF, false},
		{"tiff", TIFF, false},
		{"jpeg", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStore_Save(t *testing.T) {
	root := t.TempDir()
	src := solid(2, 2, white)
	tgt := solid(2, 2, color.Black)

	out, err := NewComparer().Compare(src, tgt)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	for _, format := range []Format{PNG, BMP, TIFF} {
		t.Run(string(format), func(t *testing.T) {
			store := &Store{Root: root, Format: format}
			paths, err := store.Save(0, 3, out)
			if err != nil {
				t.Fatalf("Save: %v", err)
			}

			dir := filepath.Join(root, "item_1", "alignment", "page_3")
			want := Paths{
				Source: filepath.Join(dir, "img1."+format.Ext()),
				Target: filepath.Join(dir, "img2."+format.Ext()),
				Diff:   filepath.Join(dir, "diff."+format.Ext()),
			}
			if paths != want {
				t.Errorf("paths = %+v, want %+v", paths, want)
			}
			for _, p := range paths.Slice() {
				if fi, err := os.Stat(p); err != nil || fi.Size() == 0 {
					t.Errorf("%s not written: %v", p, err)
				}
			}
		})
	}
}

func TestStore_SaveSingleImageFallback(t *testing.T) {
	root := t.TempDir()
	out, err := NewComparer().Compare(nil, solid(3, 2, white))
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}

	paths, err := NewStore(root).Save(1, 2, out)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	var first []byte
	for i, p := range paths.Slice() {
		data, err := os.ReadFile(p)
		if err != nil {
			t.Fatalf("read %s: %v", p, err)
		}
		if i == 0 {
			first = data
			continue
		}
		if string(data) != string(first) {
			t.Errorf("%s differs from img1; want the same image in every slot", p)
		}
	}

	if filepath.Base(filepath.Dir(filepath.Dir(filepath.Dir(paths.Diff)))) != "item_2" {
		t.Errorf("row folder for row index 1 should be item_2, got %s", paths.Diff)
	}
}

func TestStore_SaveNoContent(t *testing.T) {
	_, err := NewStore(t.TempDir()).Save(0, 1, Outcome{})
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("err = %v, want ErrNoContent", err)
	}
}
