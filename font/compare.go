package font

import (
	"fmt"
	"strings"

	"github.com/tsawler/pagediff/model"
)

// Chunk is a half-open range [Start, End) of character indexes within a word
// whose characters share a font profile, or share a difference signature
// when two renderings are compared.
type Chunk struct {
	Start, End int
}

// group splits n items into maximal runs where same(i-1, i) holds.
func group(n int, same func(prev, cur int) bool) []Chunk {
	var chunks []Chunk
	start := 0
	for i := 1; i <= n; i++ {
		if i == n || !same(i-1, i) {
			chunks = append(chunks, Chunk{Start: start, End: i})
			start = i
		}
	}
	return chunks
}

func chars(runs []model.CharacterRun, c Chunk) string {
	var sb strings.Builder
	for _, r := range runs[c.Start:c.End] {
		sb.WriteRune(r.Char)
	}
	return sb.String()
}

// Equal reports whether two run sequences have the same length and the same
// profile character for character.
func Equal(src, tgt []model.CharacterRun) bool {
	if len(src) != len(tgt) {
		return false
	}
	for i := range src {
		if ProfileOf(src[i]) != ProfileOf(tgt[i]) {
			return false
		}
	}
	return true
}

// Describe renders the fonts of a whole added or deleted word:
//
//	[Added: Wor(Font: Arial, Size: 11, Style: regular), ld(Font: Arial, Size: 11, Style: bold)]
func Describe(op model.Op, runs []model.CharacterRun) string {
	profiles := make([]Profile, len(runs))
	for i, r := range runs {
		profiles[i] = ProfileOf(r)
	}

	chunks := group(len(runs), func(prev, cur int) bool {
		return profiles[prev] == profiles[cur]
	})

	parts := make([]string, len(chunks))
	for i, c := range chunks {
		p := profiles[c.Start]
		parts[i] = fmt.Sprintf("%s(Font: %s, Size: %d, Style: %s)", chars(runs, c), p.Family, p.Size, p.Style)
	}

	return fmt.Sprintf("[%s: %s]", op, strings.Join(parts, ", "))
}

// signature records which attributes of one character differ between two
// renderings, with their before and after values.
type signature struct {
	ops      model.OpSet
	from, to Profile
}

func signatureOf(src, tgt model.CharacterRun) signature {
	a, b := ProfileOf(src), ProfileOf(tgt)

	var sig signature
	if a.Family != b.Family {
		sig.ops = sig.ops.Add(model.OpFontChanged)
		sig.from.Family, sig.to.Family = a.Family, b.Family
	}
	if a.Size != b.Size {
		sig.ops = sig.ops.Add(model.OpSizeChanged)
		sig.from.Size, sig.to.Size = a.Size, b.Size
	}
	if a.Style != b.Style {
		sig.ops = sig.ops.Add(model.OpStyleChanged)
		sig.from.Style, sig.to.Style = a.Style, b.Style
	}
	return sig
}

func (s signature) String() string {
	if s.ops.Empty() {
		return "[same]"
	}

	var parts []string
	if s.ops.Has(model.OpFontChanged) {
		parts = append(parts, fmt.Sprintf("%s : %s", s.from.Family, s.to.Family))
	}
	if s.ops.Has(model.OpSizeChanged) {
		parts = append(parts, fmt.Sprintf("%d : %d", s.from.Size, s.to.Size))
	}
	if s.ops.Has(model.OpStyleChanged) {
		parts = append(parts, fmt.Sprintf("%s : %s", s.from.Style, s.to.Style))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Compare walks two renderings of the same word in lock-step and describes
// where their fonts differ:
//
//	Hel: [Arial : Times, 11 : 12], lo: [same]
//
// The returned set holds FontChanged, SizeChanged and StyleChanged for every
// attribute that differs in at least one character. Identical renderings
// produce an empty annotation and an empty set.
func Compare(src, tgt []model.CharacterRun) (string, model.OpSet, error) {
	if len(src) != len(tgt) {
		return "", 0, fmt.Errorf("font: %w: comparing %d runs with %d", model.ErrMalformedToken, len(src), len(tgt))
	}

	sigs := make([]signature, len(src))
	var ops model.OpSet
	for i := range src {
		sigs[i] = signatureOf(src[i], tgt[i])
		ops = ops.Union(sigs[i].ops)
	}
	if ops.Empty() {
		return "", 0, nil
	}

	chunks := group(len(sigs), func(prev, cur int) bool {
		return sigs[prev] == sigs[cur]
	})

	parts := make([]string, len(chunks))
	for i, c := range chunks {
		parts[i] = chars(tgt, c) + ": " + sigs[c.Start].String()
	}

	return strings.Join(parts, ", "), ops, nil
}
