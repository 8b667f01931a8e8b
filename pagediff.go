// Package pagediff compares pairs of PDF documents page by page.
//
// For every page pair it reports word-level text differences, font changes
// on otherwise equal words, and a pixel difference image of the rendered
// pages. Results are collected per comparison row and can be rendered as an
// HTML report.
//
// Basic usage:
//
//	batch := pagediff.New().Output("out").Run(ctx, []pagediff.Row{
//	    {Source: "old.pdf", Target: "new.pdf"},
//	})
//	for _, r := range batch.Rows {
//	    if r.Err != nil {
//	        log.Println(r.Err)
//	    }
//	}
//
// With options:
//
//	batch := pagediff.New().
//	    DPI(150).
//	    Format(align.TIFF).
//	    OCR("eng").
//	    Run(ctx, rows)
package pagediff

// New returns a Comparer with default options.
//
// Example:
//
//	batch := pagediff.New().Output("out").Run(ctx, rows)
func New() *Comparer {
	return &Comparer{options: defaultOptions()}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	cfg := pagediff.Must(pagediff.LoadConfig("batch.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
