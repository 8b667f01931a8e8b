// Package diff aligns the words of two page versions and reports which words
// were added, deleted or re-rendered in a different font.
package diff

import (
	"fmt"
	"strings"

	"github.com/tsawler/pagediff/font"
	"github.com/tsawler/pagediff/model"
)

// Engine compares word sequences.
type Engine struct {
	// JoinWrapped suppresses changes caused by a word being split across two
	// lines on one side only (default: true).
	JoinWrapped bool
}

// NewEngine returns an Engine with default settings
func NewEngine() *Engine {
	return &Engine{JoinWrapped: true}
}

// Compare aligns source and target and returns the changed words in
// document order.
//
// A nil sequence means the page is absent on that side and yields a nil
// result; an empty, non-nil sequence is an empty page and is compared
// normally. When nothing changed the result is empty but not nil.
//
// Words are aligned on their text with a longest common subsequence. Words
// that match but were drawn differently are reported on the target side with
// FontChanged, SizeChanged and/or StyleChanged. When the alignment could
// either add or delete a word, the addition is taken first.
func (e *Engine) Compare(source, target []model.WordToken) ([]model.DiffRecord, error) {
	if source == nil || target == nil {
		return nil, nil
	}
	if err := validate(source, model.Source); err != nil {
		return nil, err
	}
	if err := validate(target, model.Target); err != nil {
		return nil, err
	}

	m, n := len(source), len(target)
	lcs := newTable(source, target)
	records := make([]model.DiffRecord, 0)

	i, j := 0, 0
	for i < m && j < n {
		s, t := source[i], target[j]

		if s.Text == t.Text {
			rec, changed, err := matched(s, t)
			if err != nil {
				return nil, err
			}
			if changed {
				records = append(records, rec)
			}
			i++
			j++
			continue
		}

		if lcs.at(i+1, j) > lcs.at(i, j+1) {
			if e.wrapped(s, target[j:]) {
				i++
				j += 2
				continue
			}
			records = append(records, deleted(s))
			i++
			continue
		}

		if e.wrapped(t, source[i:]) {
			i += 2
			j++
			continue
		}
		records = append(records, added(t))
		j++
	}

	for ; i < m; i++ {
		records = append(records, deleted(source[i]))
	}
	for ; j < n; j++ {
		records = append(records, added(target[j]))
	}

	return records, nil
}

// table holds the lengths of the longest common subsequences of every pair
// of suffixes: at(i, j) is the LCS length of source[i:] and target[j:].
type table struct {
	cells []int32
	width int
}

func newTable(source, target []model.WordToken) table {
	m, n := len(source), len(target)
	t := table{cells: make([]int32, (m+1)*(n+1)), width: n + 1}

	for i := m - 1; i >= 0; i-- {
		for j := n - 1; j >= 0; j-- {
			if source[i].Text == target[j].Text {
				t.cells[i*t.width+j] = t.at(i+1, j+1) + 1
			} else {
				t.cells[i*t.width+j] = max(t.at(i+1, j), t.at(i, j+1))
			}
		}
	}
	return t
}

func (t table) at(i, j int) int32 {
	return t.cells[i*t.width+j]
}

// wrapped reports whether word is the next two words of other joined
// together, where those two words sit on different lines without a hyphen at
// the join. Such a pair is the same word wrapped at a line break.
func (e *Engine) wrapped(word model.WordToken, other []model.WordToken) bool {
	if !e.JoinWrapped || len(other) < 2 {
		return false
	}
	first, second := other[0], other[1]
	if first.Line == second.Line {
		return false
	}
	if strings.HasSuffix(first.Text, "-") || strings.HasPrefix(second.Text, "-") {
		return false
	}
	return word.Text == first.Text+second.Text
}

func matched(s, t model.WordToken) (model.DiffRecord, bool, error) {
	if font.Equal(s.Runs, t.Runs) {
		return model.DiffRecord{}, false, nil
	}

	annotation, ops, err := font.Compare(s.Runs, t.Runs)
	if err != nil {
		return model.DiffRecord{}, false, fmt.Errorf("diff: word %q: %w", t.Text, err)
	}

	t.Ops = ops
	t.Annotation = annotation
	t.Counterpart = s.Runs
	return model.DiffRecord{Token: t, Side: model.Target, Ops: ops, Annotation: annotation}, true, nil
}

func deleted(s model.WordToken) model.DiffRecord {
	return record(s, model.Source, model.OpDeleted)
}

func added(t model.WordToken) model.DiffRecord {
	return record(t, model.Target, model.OpAdded)
}

func record(w model.WordToken, side model.Side, op model.Op) model.DiffRecord {
	w.Ops = model.NewOpSet(op)
	w.Annotation = font.Describe(op, w.Runs)
	return model.DiffRecord{Token: w, Side: side, Ops: w.Ops, Annotation: w.Annotation}
}

func validate(words []model.WordToken, side model.Side) error {
	for i, w := range words {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("diff: %s word %d: %w", side, i, err)
		}
	}
	return nil
}
