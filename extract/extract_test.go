package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestSplit(t *testing.T) {
	runs := split(pdf.Text{Font: "ABCDEF+Arial-Bold", FontSize: 12, X: 100, Y: 700, W: 30, S: "fi!"}, 792)
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3", len(runs))
	}

	wantX := []float64{100, 110, 120}
	for i, r := range runs {
		if r.X != wantX[i] {
			t.Errorf("runs[%d].X = %v, want %v", i, r.X, wantX[i])
		}
		if r.Width != 10 {
			t.Errorf("runs[%d].Width = %v, want 10", i, r.Width)
		}
		if r.Y != 92 {
			t.Errorf("runs[%d].Y = %v, want 92 (flipped)", i, r.Y)
		}
		if r.FontName != "ABCDEF+Arial-Bold" || r.FontSize != 12 {
			t.Errorf("runs[%d] font = %q %v", i, r.FontName, r.FontSize)
		}
	}
	if runs[0].Char != 'f' || runs[2].Char != '!' {
		t.Errorf("chars = %q %q", runs[0].Char, runs[2].Char)
	}
}

func TestSplit_Empty(t *testing.T) {
	if runs := split(pdf.Text{S: ""}, 792); runs != nil {
		t.Errorf("split of empty text = %v, want nil", runs)
	}
}

func TestSplit_FlipOrdersLinesTopDown(t *testing.T) {
	upper := split(pdf.Text{FontSize: 10, Y: 700, W: 5, S: "a"}, 792)[0]
	lower := split(pdf.Text{FontSize: 10, Y: 680, W: 5, S: "b"}, 792)[0]
	if !(upper.Y < lower.Y) {
		t.Errorf("upper.Y = %v, lower.Y = %v; the higher line should have the smaller Y", upper.Y, lower.Y)
	}
}

func TestPageHeight_Default(t *testing.T) {
	if got := pageHeight(pdf.Value{}); got != defaultPageHeight {
		t.Errorf("pageHeight(null) = %v, want %v", got, defaultPageHeight)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open("testdata/does-not-exist.pdf"); err == nil {
		t.Error("Open of a missing file should fail")
	}
}
