package result

import (
	"sort"
	"sync"
)

// Aggregator owns one Container per comparison row.
type Aggregator struct {
	root string

	mu   sync.Mutex
	rows map[int]*Container
}

// NewAggregator returns an empty aggregator for artifacts written below root.
func NewAggregator(root string) *Aggregator {
	return &Aggregator{root: root, rows: make(map[int]*Container)}
}

// Row returns the container for a row index, creating it on first use.
func (a *Aggregator) Row(index int) *Container {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.rows[index]
	if !ok {
		c = NewContainer(a.root)
		a.rows[index] = c
	}
	return c
}

// Lookup returns the container for a row index without creating one.
func (a *Aggregator) Lookup(index int) (*Container, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	c, ok := a.rows[index]
	return c, ok
}

// Rows returns the indices of all rows with a container, ascending.
func (a *Aggregator) Rows() []int {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]int, 0, len(a.rows))
	for i := range a.rows {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}
