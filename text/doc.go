// Package text turns the character stream of a page into word tokens.
//
// The extraction layer delivers one [model.CharacterRun] per rendered
// character. [Segment] groups those runs into whitespace-delimited [Chunk]
// values, and a [Builder] turns the chunks of a page into
// [model.WordToken] values with a line index:
//
//	chunks := text.Segment(runs, text.DefaultSegmentConfig())
//	words, err := text.BuildWords(chunks)
//
// # Word Boundaries
//
// A word ends at an explicit space, at a change of line, or at a horizontal
// gap of at least half an estimated space width. The space width is taken as
// a quarter of the font size, which is a reasonable default for most
// proportional fonts.
//
// # Line Assignment
//
// Lines are numbered from 1 in the order words arrive. A word opens a new
// line when the word before it starts higher on the page. Words drawn at a
// font size of one point or less are dropped as invisible artifacts.
package text
