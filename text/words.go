package text

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pagediff/model"
)

// Chunk is one whitespace-delimited span of rendered text together with the
// runs of its characters, in the order the extraction layer produced them.
type Chunk struct {
	Text string
	Runs []model.CharacterRun
}

// Builder turns the chunks of one page into word tokens.
type Builder struct {
	// MinVisibleSize is the largest integer font size still treated as an
	// invisible artifact; words drawn at or below it are dropped (default: 1).
	MinVisibleSize int
}

// NewBuilder returns a Builder with default settings
func NewBuilder() *Builder {
	return &Builder{MinVisibleSize: 1}
}

// BuildWords is shorthand for NewBuilder().Build(chunks).
func BuildWords(chunks []Chunk) ([]model.WordToken, error) {
	return NewBuilder().Build(chunks)
}

// Build converts a page's chunks into word tokens with line indexes.
//
// Line numbers start at 1 and only ever grow: a word starts a new line when
// the previous word's first character sits above its own first character.
// No geometric clustering is attempted, so the chunks must already be in
// reading order.
func (b *Builder) Build(chunks []Chunk) ([]model.WordToken, error) {
	words := make([]model.WordToken, 0, len(chunks))
	line := 1

	for i, c := range chunks {
		if n := utf8.RuneCountInString(c.Text); n != len(c.Runs) {
			return nil, fmt.Errorf("chunk %d: %w: %q has %d characters and %d runs",
				i, model.ErrMalformedToken, c.Text, n, len(c.Runs))
		}
		if len(c.Runs) == 0 || strings.TrimSpace(c.Text) == "" {
			continue
		}
		if c.Runs[0].IntSize() <= b.MinVisibleSize {
			continue
		}

		if len(words) > 0 && words[len(words)-1].FirstRun().Y < c.Runs[0].Y {
			line++
		}

		runs := make([]model.CharacterRun, len(c.Runs))
		copy(runs, c.Runs)
		words = append(words, model.WordToken{
			Text: c.Text,
			Runs: runs,
			Line: line,
		})
	}

	return words, nil
}
