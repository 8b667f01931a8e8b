package report

import "github.com/tsawler/pagediff/model"

// Palette assigns a CSS colour to each diff operation.
type Palette struct {
	Equal        string
	Deleted      string
	Added        string
	FontChanged  string
	SizeChanged  string
	StyleChanged string
}

// DefaultPalette returns the colours used when no palette is configured.
func DefaultPalette() Palette {
	return Palette{
		Equal:        "#000000",
		Deleted:      "#c62828",
		Added:        "#2e7d32",
		FontChanged:  "#1565c0",
		SizeChanged:  "#6a1b9a",
		StyleChanged: "#ef6c00",
	}
}

// Color returns the colour for op.
func (p Palette) Color(op model.Op) string {
	switch op {
	case model.OpEqual:
		return p.Equal
	case model.OpDeleted:
		return p.Deleted
	case model.OpAdded:
		return p.Added
	case model.OpFontChanged:
		return p.FontChanged
	case model.OpSizeChanged:
		return p.SizeChanged
	case model.OpStyleChanged:
		return p.StyleChanged
	default:
		return p.Equal
	}
}

// ColorOf returns the colour of the first operation in ops, or the Equal
// colour for an empty set.
func (p Palette) ColorOf(ops model.OpSet) string {
	if list := ops.Ops(); len(list) > 0 {
		return p.Color(list[0])
	}
	return p.Equal
}
