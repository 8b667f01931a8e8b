package diff

import "github.com/tsawler/pagediff/model"

// Stats counts the changes in a set of diff records. A word whose font and
// size both changed counts towards both.
type Stats struct {
	Added        int
	Deleted      int
	FontChanged  int
	SizeChanged  int
	StyleChanged int
}

// Summarize counts the operations in records.
func Summarize(records []model.DiffRecord) Stats {
	var s Stats
	for _, r := range records {
		for _, op := range r.Ops.Ops() {
			switch op {
			case model.OpAdded:
				s.Added++
			case model.OpDeleted:
				s.Deleted++
			case model.OpFontChanged:
				s.FontChanged++
			case model.OpSizeChanged:
				s.SizeChanged++
			case model.OpStyleChanged:
				s.StyleChanged++
			case model.OpEqual:
			}
		}
	}
	return s
}

// Add returns the sum of two Stats.
func (s Stats) Add(other Stats) Stats {
	return Stats{
		Added:        s.Added + other.Added,
		Deleted:      s.Deleted + other.Deleted,
		FontChanged:  s.FontChanged + other.FontChanged,
		SizeChanged:  s.SizeChanged + other.SizeChanged,
		StyleChanged: s.StyleChanged + other.StyleChanged,
	}
}

// Changed reports whether any change was counted.
func (s Stats) Changed() bool {
	return s != Stats{}
}

// Total returns the number of counted operations.
func (s Stats) Total() int {
	return s.Added + s.Deleted + s.FontChanged + s.SizeChanged + s.StyleChanged
}
