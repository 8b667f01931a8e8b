package text

import (
	"strings"
	"unicode"

	"github.com/tsawler/pagediff/model"
)

// SegmentConfig controls how a character stream is split into chunks.
type SegmentConfig struct {
	// SpaceRatio is the fraction of the font size used as the estimated width
	// of a space character (default: 0.25).
	SpaceRatio float64

	// GapThreshold is the fraction of a space width at which a horizontal gap
	// between two characters ends a word (default: 0.5).
	GapThreshold float64

	// LineTolerance is the vertical distance, as a fraction of the font size,
	// beyond which two characters are on different lines (default: 0.5).
	LineTolerance float64
}

// DefaultSegmentConfig returns sensible default configuration
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		SpaceRatio:    0.25,
		GapThreshold:  0.5,
		LineTolerance: 0.5,
	}
}

// Segment splits a page's character stream into word chunks. A word ends at
// an explicit whitespace character, a line change or a horizontal gap wide
// enough to be a missing space. Whitespace runs are not part of any chunk.
func Segment(runs []model.CharacterRun, cfg SegmentConfig) []Chunk {
	var (
		chunks  []Chunk
		current []model.CharacterRun
	)

	flush := func() {
		if len(current) == 0 {
			return
		}
		var sb strings.Builder
		for _, r := range current {
			sb.WriteRune(r.Char)
		}
		chunks = append(chunks, Chunk{Text: sb.String(), Runs: current})
		current = nil
	}

	for _, r := range runs {
		if unicode.IsSpace(r.Char) {
			flush()
			continue
		}
		if len(current) > 0 && cfg.breaksWord(current[len(current)-1], r) {
			flush()
		}
		current = append(current, r)
	}
	flush()

	return chunks
}

// breaksWord reports whether next starts a new word after prev.
func (cfg SegmentConfig) breaksWord(prev, next model.CharacterRun) bool {
	size := prev.FontSize
	if size <= 0 {
		size = next.FontSize
	}

	if abs(next.Y-prev.Y) > size*cfg.LineTolerance {
		return true
	}

	// Overlapping or touching glyphs belong to the same word
	gap := next.X - (prev.X + prev.Width)
	if gap < 0 || gap < size*0.05 {
		return false
	}

	spaceWidth := size * cfg.SpaceRatio
	return gap >= spaceWidth*cfg.GapThreshold
}

// abs returns the absolute value of a float64
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
