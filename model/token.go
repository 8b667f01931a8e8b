package model

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrMalformedToken is returned when a word and its character runs disagree.
// It indicates a bug in whatever produced the token, not bad user input.
var ErrMalformedToken = errors.New("model: word text and character runs differ in length")

// WordToken is one extracted word with its per-character rendering data.
type WordToken struct {
	Text string
	Runs []CharacterRun

	// Line is the 1-based line index of the word on its page.
	Line int

	Ops        OpSet
	Annotation string

	// Counterpart holds the runs of the matching word on the other side when
	// the diff engine found the same text rendered differently.
	Counterpart []CharacterRun
}

// Validate checks that the token has exactly one run per character.
func (w WordToken) Validate() error {
	if n := utf8.RuneCountInString(w.Text); n != len(w.Runs) {
		return fmt.Errorf("%w: %q has %d characters and %d runs", ErrMalformedToken, w.Text, n, len(w.Runs))
	}
	return nil
}

// Bounds returns the union of the bounding boxes of the word's runs.
func (w WordToken) Bounds() BBox {
	var b BBox
	for _, r := range w.Runs {
		b = b.Union(r.Bounds())
	}
	return b
}

// FirstRun returns the first character run, or a zero run for an empty token.
func (w WordToken) FirstRun() CharacterRun {
	if len(w.Runs) == 0 {
		return CharacterRun{}
	}
	return w.Runs[0]
}

// DiffRecord is a word that the diff engine reported as changed.
type DiffRecord struct {
	Token      WordToken
	Side       Side
	Ops        OpSet
	Annotation string
}

// String returns a one-line description of the record
func (d DiffRecord) String() string {
	return fmt.Sprintf("%s(%q, line %d)", d.Ops, d.Token.Text, d.Token.Line)
}
