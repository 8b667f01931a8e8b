package font

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/pagediff/model"
)

// Style is the bold/italic classification of a font.
type Style uint8

const (
	Bold Style = 1 << iota
	Italic
)

// Regular is the style with neither flag set.
const Regular Style = 0

// String returns "bold", "italic", "bold|italic" or "regular"
func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Bold | Italic:
		return "bold|italic"
	default:
		return "regular"
	}
}

// Descriptor thresholds for style detection.
const (
	BoldWeight        = 700
	ItalicAngleCutoff = -10
)

// Keywords in font names that indicate a bold or italic face.
var (
	boldKeywords   = []string{"bold", "black", "heavy"}
	italicKeywords = []string{"italic", "oblique"}
)

// decorativeModifiers are removed anywhere in a family name; the longest
// modifiers come first so "semibold" wins over "bold".
var decorativeModifiers = []string{
	"semibold", "demibold", "oblique", "regular", "italic", "black", "heavy", "bold",
}

// vendorSuffixes are removed only from the end of a family name.
var vendorSuffixes = []string{"psmt", "mt", "ps"}

var folder = cases.Fold()

// Profile is the normalized font identity of one character.
type Profile struct {
	Family string
	Size   int
	Style  Style
}

// ProfileOf returns the normalized profile of a character run.
func ProfileOf(r model.CharacterRun) Profile {
	return Profile{
		Family: Normalize(r.FontName),
		Size:   r.IntSize(),
		Style:  StyleOf(r),
	}
}

// stripSubset removes a subset tag such as "ABCDEF+" from a font name.
func stripSubset(name string) string {
	if idx := strings.IndexByte(name, '+'); idx >= 0 {
		return name[idx+1:]
	}
	return name
}

// Normalize reduces a raw font name to its family, so that subset tags,
// style suffixes and vendor decorations do not count as font changes:
//
//	"ABCDEF+Arial-BoldMT"        -> "Arial"
//	"TimesNewRomanPS-ItalicMT"   -> "TimesNewRoman"
//	"Calibri,Bold"               -> "Calibri"
func Normalize(name string) string {
	name = stripSubset(name)
	if idx := strings.IndexAny(name, "-,"); idx > 0 {
		name = name[:idx]
	}
	name = norm.NFKC.String(name)
	name = removeModifiers(name)

	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	family := sb.String()

	for _, suffix := range vendorSuffixes {
		if len(family) > len(suffix) && strings.EqualFold(family[len(family)-len(suffix):], suffix) {
			family = family[:len(family)-len(suffix)]
			break
		}
	}

	return family
}

// removeModifiers deletes decorative modifiers, ignoring case, when they
// stand as their own word: starting at a word or CamelCase boundary and
// ending at the end of the name, a non-letter or an upper-case letter.
// "ArialBold" loses "Bold"; "Blackadder" keeps "Black".
func removeModifiers(name string) string {
	var sb strings.Builder
	for i := 0; i < len(name); {
		n := 0
		if wordStart(name, i) {
			for _, m := range decorativeModifiers {
				if len(name)-i >= len(m) && strings.EqualFold(name[i:i+len(m)], m) && wordEnd(name, i+len(m)) {
					n = len(m)
					break
				}
			}
		}
		if n == 0 {
			sb.WriteByte(name[i])
			n = 1
		}
		i += n
	}
	return sb.String()
}

// wordStart reports whether a word can begin at byte offset i.
func wordStart(name string, i int) bool {
	if i == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(name[:i])
	cur, _ := utf8.DecodeRuneInString(name[i:])
	if !unicode.IsLetter(prev) {
		return true
	}
	return unicode.IsLower(prev) && unicode.IsUpper(cur)
}

// wordEnd reports whether a word can end at byte offset i.
func wordEnd(name string, i int) bool {
	if i == len(name) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(name[i:])
	return !unicode.IsLetter(next) || unicode.IsUpper(next)
}

// StyleOf classifies a run as bold and/or italic from its font name and,
// when present, its descriptor weight and italic angle.
func StyleOf(r model.CharacterRun) Style {
	folded := folder.String(stripSubset(r.FontName))

	var s Style
	if containsAny(folded, boldKeywords) || r.FontWeight >= BoldWeight {
		s |= Bold
	}
	if containsAny(folded, italicKeywords) || r.ItalicAngle <= ItalicAngleCutoff {
		s |= Italic
	}
	return s
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
