package result

import "github.com/tsawler/pagediff/model"

// PairsFrom converts diff records into text pairs grouped by side.
//
// A deleted source word becomes a source pair with an empty correction, an
// added target word a target pair with an empty original. A target word whose
// font changed pairs with itself and carries the font annotation as its note.
func PairsFrom(records []model.DiffRecord) (source, target []Pair) {
	for _, r := range records {
		p := Pair{Note: r.Annotation}
		switch {
		case r.Ops.Has(model.OpDeleted):
			p.Original = r.Token.Text
		case r.Ops.Has(model.OpAdded):
			p.Corrected = r.Token.Text
		default:
			p.Original = r.Token.Text
			p.Corrected = r.Token.Text
		}

		if r.Side == model.Source {
			source = append(source, p)
		} else {
			target = append(target, p)
		}
	}
	return source, target
}
