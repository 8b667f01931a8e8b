package result

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tsawler/pagediff/model"
)

// Path is an artifact path relative to the output root.
type Path struct {
	// Rel uses forward slashes regardless of platform.
	Rel string
	// Literal is Rel as a JSON string literal.
	Literal string
}

// Slot is one indexed row of paths. Unset slots are placeholders for
// indices that were skipped.
type Slot struct {
	Set   bool
	Paths []Path
}

// Pair is an original/corrected text pair.
type Pair struct {
	Original  string
	Corrected string
	Note      string
}

// SidePairs is a list of pairs tagged with the document side it came from.
type SidePairs struct {
	Side  model.Side
	Pairs []Pair
}

// Container holds the artifacts of one comparison row. It is safe for
// concurrent use.
type Container struct {
	root string

	mu        sync.Mutex
	alignment []Slot
	content   []Slot
	pairs     []SidePairs
}

// NewContainer returns an empty container whose paths are made relative to
// root.
func NewContainer(root string) *Container {
	return &Container{root: root}
}

// Root returns the directory paths are relative to.
func (c *Container) Root() string {
	return c.root
}

// AddAlignmentRow records the alignment images for a page index. It panics
// if index is negative.
func (c *Container) AddAlignmentRow(index int, paths []string) {
	row := c.normalize(paths)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.alignment = put(c.alignment, index, row)
}

// AddContentRow records the annotated page images for a page index. It
// panics if index is negative.
func (c *Container) AddContentRow(index int, paths []string) {
	row := c.normalize(paths)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = put(c.content, index, row)
}

// AddListOfPairs appends a list of text pairs for one side.
func (c *Container) AddListOfPairs(side model.Side, pairs []Pair) {
	cp := append([]Pair(nil), pairs...)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.pairs = append(c.pairs, SidePairs{Side: side, Pairs: cp})
}

// AlignmentRows returns a copy of the alignment slots in index order.
func (c *Container) AlignmentRows() []Slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySlots(c.alignment)
}

// ContentRows returns a copy of the content slots in index order.
func (c *Container) ContentRows() []Slot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return copySlots(c.content)
}

// Pairs returns a copy of the pair lists in insertion order.
func (c *Container) Pairs() []SidePairs {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]SidePairs, len(c.pairs))
	for i, sp := range c.pairs {
		out[i] = SidePairs{Side: sp.Side, Pairs: append([]Pair(nil), sp.Pairs...)}
	}
	return out
}

// Literals returns the quoted literal of every path in a slot list, joined
// with commas, in slot order. Unset slots are skipped.
func Literals(slots []Slot) string {
	var parts []string
	for _, s := range slots {
		if !s.Set {
			continue
		}
		for _, p := range s.Paths {
			parts = append(parts, p.Literal)
		}
	}
	return strings.Join(parts, ",")
}

func (c *Container) normalize(paths []string) []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		rel := c.relative(strings.ReplaceAll(p, `\`, "/"))
		out[i] = Path{Rel: rel, Literal: literal(rel)}
	}
	return out
}

// literal returns s as a JSON string. The encoder escapes <, > and & so the
// literal is safe inside an inline script element.
func literal(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func (c *Container) relative(p string) string {
	if c.root == "" {
		return p
	}
	root := filepath.FromSlash(strings.ReplaceAll(c.root, `\`, "/"))
	rel, err := filepath.Rel(root, filepath.FromSlash(p))
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return filepath.ToSlash(rel)
}

// put stores row at index, growing the slice with placeholders as needed.
// It panics on a negative index.
func put(slots []Slot, index int, row []Path) []Slot {
	if index < 0 {
		panic(fmt.Sprintf("result: negative slot index %d", index))
	}
	for len(slots) <= index {
		slots = append(slots, Slot{})
	}
	slots[index] = Slot{Set: true, Paths: row}
	return slots
}

func copySlots(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	for i, s := range slots {
		out[i] = Slot{Set: s.Set, Paths: append([]Path(nil), s.Paths...)}
	}
	return out
}
