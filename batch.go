package pagediff

import (
	"fmt"

	"github.com/tsawler/pagediff/align"
	"github.com/tsawler/pagediff/diff"
	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/report"
	"github.com/tsawler/pagediff/result"
)

// Row is one pair of documents to compare. An empty page expression selects
// every page of that document.
type Row struct {
	Source      string `yaml:"source"`
	Target      string `yaml:"target"`
	SourcePages string `yaml:"source_pages"`
	TargetPages string `yaml:"target_pages"`
}

// PagePair is a source page compared against a target page (1-based).
type PagePair struct {
	Source int
	Target int
}

// Warning describes a degraded but recoverable condition, such as a page
// that exists on one side only.
type Warning struct {
	// Page is the 1-based position of the page pair within its row.
	Page    int
	Side    model.Side
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("page %d (%s): %s", w.Page, w.Side, w.Message)
}

// PageResult is the outcome of one page pair.
type PageResult struct {
	Pair       PagePair
	Records    []model.DiffRecord
	Stats      diff.Stats
	DiffPixels int
	Paths      align.Paths
}

// RowResult is the outcome of one row. Pages holds the pages compared before
// Err, if any, stopped the row.
type RowResult struct {
	Index    int
	Row      Row
	Pages    []PageResult
	Warnings []Warning
	Err      error
}

// Stats sums the change counts of all pages.
func (r RowResult) Stats() diff.Stats {
	var s diff.Stats
	for _, p := range r.Pages {
		s = s.Add(p.Stats)
	}
	return s
}

// Records returns the diff records of all pages in page order.
func (r RowResult) Records() []model.DiffRecord {
	var out []model.DiffRecord
	for _, p := range r.Pages {
		out = append(out, p.Records...)
	}
	return out
}

// Batch is the result of Comparer.Run.
type Batch struct {
	RunID   string
	Rows    []RowResult
	Results *result.Aggregator

	palette *report.Palette
}

// Failed returns the number of rows that ended with an error.
func (b *Batch) Failed() int {
	n := 0
	for _, r := range b.Rows {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// Report converts the batch into a report document.
func (b *Batch) Report() report.Document {
	doc := report.Document{
		Title:   "Comparison report",
		RunID:   b.RunID,
		Palette: b.palette,
	}
	for _, r := range b.Rows {
		row := report.Row{
			Index:   r.Index,
			Source:  r.Row.Source,
			Target:  r.Row.Target,
			Err:     r.Err,
			Records: r.Records(),
		}
		if c, ok := b.Results.Lookup(r.Index); ok {
			row.Artifacts = c
		}
		for _, w := range r.Warnings {
			row.Warnings = append(row.Warnings, w.String())
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc
}
