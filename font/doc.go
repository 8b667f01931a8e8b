// Package font compares the fonts two renderings of a word were drawn with.
//
// Raw font names carry a lot of noise: subset tags ("ABCDEF+"), style
// suffixes ("-BoldMT", ",Italic") and vendor decorations ("PSMT"). [Normalize]
// reduces a name to its family and [StyleOf] derives the bold/italic style
// from the name and the optional descriptor hints. Together with the integer
// font size they form a character's [Profile].
//
// # Annotations
//
// [Describe] renders an added or deleted word as runs of characters that
// share a profile:
//
//	[Deleted: Wor(Font: Arial, Size: 11, Style: regular), ld(Font: Arial, Size: 11, Style: bold)]
//
// [Compare] walks two renderings of the same word and groups characters by
// what changed between them, marking the word with FontChanged, SizeChanged
// or StyleChanged:
//
//	Hel: [Arial : Times], lo: [same]
//
// Grouping keeps reports readable: a word set in a new font produces one
// entry instead of one per character.
package font
