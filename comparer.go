package pagediff

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tsawler/pagediff/align"
	"github.com/tsawler/pagediff/report"
	"github.com/tsawler/pagediff/result"
	"github.com/tsawler/pagediff/text"
)

// Comparer provides a fluent interface for configuring and running
// comparisons. Each configuration method returns a new Comparer instance,
// so a configured Comparer can be shared and reused.
type Comparer struct {
	options Options

	// Accumulated configuration error (fail-fast)
	err error
}

// clone creates a copy of the Comparer with a deep copy of options.
func (c *Comparer) clone() *Comparer {
	return &Comparer{options: c.options.clone(), err: c.err}
}

// fail returns a copy of the Comparer carrying err unless one is already set.
func (c *Comparer) fail(err error) *Comparer {
	newCmp := c.clone()
	if newCmp.err == nil {
		newCmp.err = err
	}
	return newCmp
}

// Err returns the first configuration error, if any.
func (c *Comparer) Err() error {
	return c.err
}

// ============================================================================
// Configuration Methods (return new Comparer instance)
// ============================================================================

// DPI sets the resolution pages are rendered at.
//
// Example:
//
//	batch := pagediff.New().DPI(150).Run(ctx, rows)
func (c *Comparer) DPI(dpi float64) *Comparer {
	if dpi <= 0 {
		return c.fail(fmt.Errorf("pagediff: dpi must be > 0, got %v", dpi))
	}
	newCmp := c.clone()
	newCmp.options.dpi = dpi
	return newCmp
}

// Output sets the directory artifacts are written below.
func (c *Comparer) Output(dir string) *Comparer {
	if dir == "" {
		return c.fail(fmt.Errorf("pagediff: output directory is required"))
	}
	newCmp := c.clone()
	newCmp.options.outputDir = dir
	return newCmp
}

// Format sets the image format of stored artifacts.
func (c *Comparer) Format(f align.Format) *Comparer {
	parsed, err := align.ParseFormat(string(f))
	if err != nil {
		return c.fail(err)
	}
	newCmp := c.clone()
	newCmp.options.format = parsed
	return newCmp
}

// Highlight sets the colour of differing pixels in difference images.
func (c *Comparer) Highlight(col color.Color) *Comparer {
	newCmp := c.clone()
	newCmp.options.highlight = col
	return newCmp
}

// Segment replaces the word segmentation settings used for extracted text.
func (c *Comparer) Segment(cfg text.SegmentConfig) *Comparer {
	newCmp := c.clone()
	newCmp.options.segment = cfg
	return newCmp
}

// MinVisibleSize sets the integer font size at or below which words are
// treated as invisible and ignored.
func (c *Comparer) MinVisibleSize(size int) *Comparer {
	newCmp := c.clone()
	newCmp.options.minVisibleSize = size
	return newCmp
}

// JoinWrapped controls whether a word split across two lines on one side
// only is treated as unchanged (default: true).
func (c *Comparer) JoinWrapped(join bool) *Comparer {
	newCmp := c.clone()
	newCmp.options.joinWrapped = join
	return newCmp
}

// OCR enables recognition of pages that have no text layer, using the given
// Tesseract language list. OCR requires a build with the "ocr" tag.
//
// Example:
//
//	batch := pagediff.New().OCR("eng+deu").Run(ctx, rows)
func (c *Comparer) OCR(language string) *Comparer {
	newCmp := c.clone()
	newCmp.options.ocr = true
	if language != "" {
		newCmp.options.ocrLanguage = language
	}
	return newCmp
}

// ValidateInput makes every document pass PDF validation before it is
// compared.
func (c *Comparer) ValidateInput() *Comparer {
	newCmp := c.clone()
	newCmp.options.validate = true
	return newCmp
}

// Palette sets the colours used by Batch.Report.
func (c *Comparer) Palette(p report.Palette) *Comparer {
	newCmp := c.clone()
	newCmp.options.palette = &p
	return newCmp
}

// Logger sets the logger for progress and failures.
func (c *Comparer) Logger(l *slog.Logger) *Comparer {
	newCmp := c.clone()
	if l == nil {
		l = slog.Default()
	}
	newCmp.options.logger = l
	return newCmp
}

// Opener replaces how documents are opened. The default opens PDF files.
func (c *Comparer) Opener(o Opener) *Comparer {
	newCmp := c.clone()
	newCmp.options.opener = o
	return newCmp
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Run compares every row in order and returns the batch. Rows fail
// independently: the error of a row is recorded on its RowResult and the
// next row is processed. ctx is checked before each row and each page; once
// it is done, the remaining rows fail with its error.
func (c *Comparer) Run(ctx context.Context, rows []Row) *Batch {
	b := &Batch{
		RunID:   uuid.NewString(),
		Results: result.NewAggregator(c.options.outputDir),
		palette: c.options.palette,
	}

	log := c.options.logger.With("run", b.RunID)
	log.Info("batch started", "rows", len(rows), "output", c.options.outputDir)

	r := newRunner(c.options, log)
	defer r.close()

	for i, row := range rows {
		rr := RowResult{Index: i, Row: row}

		switch {
		case c.err != nil:
			rr.Err = c.err
		case ctx.Err() != nil:
			rr.Err = ctx.Err()
		default:
			r.runRow(ctx, &rr, b.Results.Row(i))
		}

		if rr.Err != nil {
			log.Error("row failed", "row", i+1, "source", row.Source, "target", row.Target, "error", rr.Err)
		} else {
			log.Info("row compared", "row", i+1, "pages", len(rr.Pages), "changes", rr.Stats().Total())
		}
		b.Rows = append(b.Rows, rr)
	}

	log.Info("batch finished", "rows", len(rows), "failed", b.Failed())
	return b
}
