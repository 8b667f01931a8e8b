package ocr

import (
	"image"
	"testing"

	"github.com/tsawler/pagediff/text"
)

func TestChunks(t *testing.T) {
	boxes := []Box{
		{Rect: image.Rect(100, 200, 160, 240), Word: "Hello", Confidence: 91},
		{Rect: image.Rect(170, 200, 230, 240), Word: "noise", Confidence: 12},
		{Rect: image.Rect(100, 260, 140, 300), Word: "", Confidence: 99},
		{Rect: image.Rect(100, 260, 140, 300), Word: "two", Confidence: 88},
	}

	chunks := Chunks(boxes, Options{DPI: 144, MinConfidence: 50})
	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2", len(chunks))
	}

	hello := chunks[0]
	if hello.Text != "Hello" || len(hello.Runs) != 5 {
		t.Fatalf("chunk = %q with %d runs", hello.Text, len(hello.Runs))
	}
	// 60px wide at 144 DPI is 30pt, 6pt per character.
	if got := hello.Runs[1].X; got != 56 {
		t.Errorf("second char X = %v, want 56", got)
	}
	if got := hello.Runs[0].FontSize; got != 20 {
		t.Errorf("FontSize = %v, want 20", got)
	}
	if got := hello.Runs[0].Y; got != 120 {
		t.Errorf("Y = %v, want 120", got)
	}
	if hello.Runs[0].FontName != FontName {
		t.Errorf("FontName = %q", hello.Runs[0].FontName)
	}
}

func TestChunks_FeedWordBuilder(t *testing.T) {
	boxes := []Box{
		{Rect: image.Rect(0, 0, 40, 20), Word: "one", Confidence: 90},
		{Rect: image.Rect(50, 0, 90, 20), Word: "two", Confidence: 90},
		{Rect: image.Rect(0, 40, 40, 60), Word: "three", Confidence: 90},
	}

	tokens, err := text.BuildWords(Chunks(boxes, Options{}))
	if err != nil {
		t.Fatalf("BuildWords: %v", err)
	}
	lines := []int{tokens[0].Line, tokens[1].Line, tokens[2].Line}
	if lines[0] != 1 || lines[1] != 1 || lines[2] != 2 {
		t.Errorf("lines = %v, want [1 1 2]", lines)
	}
}
