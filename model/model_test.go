package model

import (
	"errors"
	"testing"
)

func TestBBox_Union(t *testing.T) {
	a := NewBBox(10, 10, 10, 10)
	b := NewBBox(15, 5, 20, 10)

	u := a.Union(b)
	if u.Left() != 10 || u.Top() != 5 || u.Right() != 35 || u.Bottom() != 20 {
		t.Errorf("unexpected union %+v", u)
	}

	if got := (BBox{}).Union(a); got != a {
		t.Errorf("union with empty box = %+v, want %+v", got, a)
	}
}

func TestBBox_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		box  BBox
		want bool
	}{
		{"zero", BBox{}, true},
		{"zero width", NewBBox(5, 5, 0, 10), true},
		{"negative height", NewBBox(5, 5, 10, -1), true},
		{"area", NewBBox(5, 5, 10, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOpSet(t *testing.T) {
	s := NewOpSet(OpFontChanged, OpStyleChanged)

	if !s.Has(OpFontChanged) || !s.Has(OpStyleChanged) {
		t.Errorf("expected both ops in %s", s)
	}
	if s.Has(OpSizeChanged) {
		t.Error("did not expect SizeChanged")
	}
	if got := s.String(); got != "FontChanged|StyleChanged" {
		t.Errorf("String() = %q", got)
	}
	if got := OpSet(0).String(); got != "None" {
		t.Errorf("empty String() = %q", got)
	}
	if !OpSet(0).Empty() {
		t.Error("zero set should be empty")
	}

	u := s.Union(NewOpSet(OpAdded))
	if len(u.Ops()) != 3 {
		t.Errorf("expected 3 ops, got %v", u.Ops())
	}
}

func TestWordToken_Validate(t *testing.T) {
	tests := []struct {
		name    string
		token   WordToken
		wantErr bool
	}{
		{"matching", WordToken{Text: "ab", Runs: make([]CharacterRun, 2)}, false},
		{"multibyte", WordToken{Text: "äö", Runs: make([]CharacterRun, 2)}, false},
		{"too few runs", WordToken{Text: "abc", Runs: make([]CharacterRun, 2)}, true},
		{"empty", WordToken{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.token.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrMalformedToken) {
				t.Errorf("expected ErrMalformedToken, got %v", err)
			}
		})
	}
}

func TestWordToken_Bounds(t *testing.T) {
	w := WordToken{
		Text: "hi",
		Runs: []CharacterRun{
			{Char: 'h', X: 10, Y: 100, Width: 5, Height: 10},
			{Char: 'i', X: 15, Y: 100, Width: 3, Height: 10},
		},
	}

	b := w.Bounds()
	if b.Left() != 10 || b.Right() != 18 || b.Top() != 90 || b.Bottom() != 100 {
		t.Errorf("unexpected bounds %+v", b)
	}
}

func TestSide_String(t *testing.T) {
	if Source.String() != "source" || Target.String() != "target" {
		t.Errorf("unexpected side names %s %s", Source, Target)
	}
}

func TestCharacterRun_IntSize(t *testing.T) {
	tests := []struct {
		size float64
		want int
	}{
		{11.4, 11},
		{11.6, 11},
		{12, 12},
		{0.9, 0},
		{1.99, 1},
	}

	for _, tt := range tests {
		if got := (CharacterRun{FontSize: tt.size}).IntSize(); got != tt.want {
			t.Errorf("IntSize(%v) = %d, want %d", tt.size, got, tt.want)
		}
	}
}
