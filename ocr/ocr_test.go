//go:build ocr

package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// blankPage returns a white PNG with one black bar, which Tesseract may or
// may not read as text.
func blankPage(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}
	for x := 10; x < 50; x++ {
		for y := 10; y < 30; y++ {
			img.Set(x, y, color.Black)
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

func TestNew(t *testing.T) {
	client, err := New(Options{})
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	if client.opts.Language != "eng" {
		t.Errorf("Language = %q, want eng", client.opts.Language)
	}
}

func TestWords(t *testing.T) {
	client, err := New(Options{DPI: 100})
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}
	defer client.Close()

	chunks, err := client.Words(blankPage(200, 80))
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}
	for _, c := range chunks {
		if len([]rune(c.Text)) != len(c.Runs) {
			t.Errorf("chunk %q has %d runs", c.Text, len(c.Runs))
		}
	}
}

func TestClose(t *testing.T) {
	client, err := New(Options{})
	if err != nil {
		t.Skipf("Tesseract not available: %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}

	client.client = nil
	if err := client.Close(); err != nil {
		t.Errorf("Close on nil client failed: %v", err)
	}
}
