package pagediff

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"math"

	"github.com/tsawler/pagediff/align"
	"github.com/tsawler/pagediff/diff"
	"github.com/tsawler/pagediff/model"
	"github.com/tsawler/pagediff/ocr"
	"github.com/tsawler/pagediff/pagerange"
	"github.com/tsawler/pagediff/report"
	"github.com/tsawler/pagediff/result"
	"github.com/tsawler/pagediff/text"
)

// ErrPageCountMismatch is returned when the page ranges of a row resolve to
// a different number of pages on each side.
var ErrPageCountMismatch = errors.New("pagediff: source and target page counts differ")

// recognizer reads words from a rendered page.
type recognizer interface {
	Words(imageData []byte) ([]text.Chunk, error)
	Close() error
}

// runner carries the per-run state shared by all rows.
type runner struct {
	opts    Options
	log     *slog.Logger
	opener  Opener
	builder *text.Builder
	engine  *diff.Engine
	aligner *align.Comparer
	store   *align.Store
	ocr     recognizer

	palette report.Palette
	colors  map[string]color.Color
}

func newRunner(opts Options, log *slog.Logger) *runner {
	r := &runner{
		opts:    opts,
		log:     log,
		opener:  opts.opener,
		builder: &text.Builder{MinVisibleSize: opts.minVisibleSize},
		engine:  &diff.Engine{JoinWrapped: opts.joinWrapped},
		aligner: &align.Comparer{Highlight: opts.highlight},
		store:   &align.Store{Root: opts.outputDir, Format: opts.format},
	}
	if r.opener == nil {
		r.opener = pdfOpener{dpi: opts.dpi, segment: opts.segment, validate: opts.validate}
	}

	r.palette = report.DefaultPalette()
	if opts.palette != nil {
		r.palette = *opts.palette
	}
	r.colors = make(map[string]color.Color)
	p := r.palette
	for _, css := range []string{p.Equal, p.Deleted, p.Added, p.FontChanged, p.SizeChanged, p.StyleChanged} {
		c, err := ParseColor(css)
		if err != nil {
			log.Warn("palette colour not usable for page marks", "colour", css, "error", err)
			continue
		}
		r.colors[css] = c
	}

	if opts.ocr {
		client, err := ocr.New(ocr.Options{Language: opts.ocrLanguage, DPI: opts.dpi})
		if err != nil {
			log.Warn("ocr disabled", "error", err)
		} else {
			r.ocr = client
		}
	}
	return r
}

func (r *runner) close() {
	if r.ocr != nil {
		if err := r.ocr.Close(); err != nil {
			r.log.Warn("ocr close failed", "error", err)
		}
	}
}

// runRow compares one row, recording pages, warnings and the first error on
// rr. Artifacts are added to c.
func (r *runner) runRow(ctx context.Context, rr *RowResult, c *result.Container) {
	log := r.log.With("row", rr.Index+1)

	src, err := r.opener.Open(rr.Row.Source)
	if err != nil {
		rr.Err = fmt.Errorf("open source: %w", err)
		return
	}
	defer closeLogged(log, src)

	tgt, err := r.opener.Open(rr.Row.Target)
	if err != nil {
		rr.Err = fmt.Errorf("open target: %w", err)
		return
	}
	defer closeLogged(log, tgt)

	pairs, err := resolvePairs(rr.Row, src.NumPage(), tgt.NumPage())
	if err != nil {
		rr.Err = err
		return
	}

	for i, pair := range pairs {
		if err := ctx.Err(); err != nil {
			rr.Err = err
			return
		}

		pr, err := r.comparePage(rr, i, pair, src, tgt, c)
		if err != nil {
			rr.Err = fmt.Errorf("page %d (source %d, target %d): %w", i+1, pair.Source, pair.Target, err)
			return
		}
		rr.Pages = append(rr.Pages, pr)
		log.Debug("page compared", "page", i+1, "source_page", pair.Source, "target_page", pair.Target,
			"changes", pr.Stats.Total(), "diff_pixels", pr.DiffPixels)
	}
}

// resolvePairs resolves the page ranges of a row and pairs them up.
func resolvePairs(row Row, sourcePages, targetPages int) ([]PagePair, error) {
	sp, err := pagerange.Resolve(row.SourcePages, sourcePages)
	if err != nil {
		return nil, fmt.Errorf("source pages: %w", err)
	}
	tp, err := pagerange.Resolve(row.TargetPages, targetPages)
	if err != nil {
		return nil, fmt.Errorf("target pages: %w", err)
	}
	if len(sp) != len(tp) {
		return nil, fmt.Errorf("%w: %d source pages, %d target pages", ErrPageCountMismatch, len(sp), len(tp))
	}

	pairs := make([]PagePair, len(sp))
	for i := range sp {
		pairs[i] = PagePair{Source: sp[i], Target: tp[i]}
	}
	return pairs, nil
}

// comparePage compares the i-th page pair of a row.
func (r *runner) comparePage(rr *RowResult, i int, pair PagePair, src, tgt Document, c *result.Container) (PageResult, error) {
	res := PageResult{Pair: pair}
	warn := func(side model.Side, msg string) {
		rr.Warnings = append(rr.Warnings, Warning{Page: i + 1, Side: side, Message: msg})
	}

	srcImg, err := page(src, pair.Source)
	if err != nil {
		return res, fmt.Errorf("render source: %w", err)
	}
	if srcImg == nil {
		warn(model.Source, "page image missing")
	}
	tgtImg, err := page(tgt, pair.Target)
	if err != nil {
		return res, fmt.Errorf("render target: %w", err)
	}
	if tgtImg == nil {
		warn(model.Target, "page image missing")
	}

	srcWords, err := r.words(src, pair.Source, srcImg)
	if err != nil {
		return res, fmt.Errorf("source text: %w", err)
	}
	if srcWords == nil {
		warn(model.Source, "page text missing")
	}
	tgtWords, err := r.words(tgt, pair.Target, tgtImg)
	if err != nil {
		return res, fmt.Errorf("target text: %w", err)
	}
	if tgtWords == nil {
		warn(model.Target, "page text missing")
	}

	res.Records, err = r.engine.Compare(srcWords, tgtWords)
	if err != nil {
		return res, err
	}
	res.Stats = diff.Summarize(res.Records)

	// Both images missing is already reported above
	outcome, err := r.aligner.Compare(srcImg, tgtImg)
	switch {
	case errors.Is(err, align.ErrNoContent):
	case err != nil:
		return res, err
	default:
		res.DiffPixels = outcome.DiffPixels
		res.Paths, err = r.store.Save(rr.Index, i+1, outcome)
		if err != nil {
			return res, err
		}
		c.AddAlignmentRow(i, res.Paths.Slice())
	}

	if srcImg != nil || tgtImg != nil {
		content, err := r.store.SaveContent(rr.Index, i+1,
			r.annotate(srcImg, res.Records, model.Source),
			r.annotate(tgtImg, res.Records, model.Target))
		if err != nil {
			return res, err
		}
		c.AddContentRow(i, content)
	}

	source, target := result.PairsFrom(res.Records)
	c.AddListOfPairs(model.Source, source)
	c.AddListOfPairs(model.Target, target)
	return res, nil
}

// annotate outlines the words of one side's records on a copy of its page
// image. Word boxes are in points and scaled to the rendering resolution.
func (r *runner) annotate(img image.Image, records []model.DiffRecord, side model.Side) image.Image {
	if img == nil {
		return nil
	}

	scale := r.opts.dpi / 72
	var marks []align.Mark
	for _, rec := range records {
		if rec.Side != side {
			continue
		}
		b := rec.Token.Bounds()
		if b.IsEmpty() {
			continue
		}
		marks = append(marks, align.Mark{
			Rect: image.Rect(
				int(math.Floor(b.Left()*scale)), int(math.Floor(b.Top()*scale)),
				int(math.Ceil(b.Right()*scale)), int(math.Ceil(b.Bottom()*scale)),
			),
			Color: r.colors[r.palette.ColorOf(rec.Ops)],
		})
	}
	return align.Annotate(img, marks)
}

// page renders a page, returning a nil image when the document lacks it.
func page(doc Document, n int) (image.Image, error) {
	img, err := doc.Page(n)
	if errors.Is(err, ErrPageMissing) {
		return nil, nil
	}
	return img, err
}

// words returns the word tokens of a page, or nil when the document lacks
// the page. A page without any text is recognized from its image when OCR
// is enabled.
func (r *runner) words(doc Document, n int, img image.Image) ([]model.WordToken, error) {
	chunks, err := doc.Chunks(n)
	if errors.Is(err, ErrPageMissing) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(chunks) == 0 && r.ocr != nil && img != nil {
		data, err := pagePNG(doc, n, img)
		if err != nil {
			return nil, fmt.Errorf("encode page for ocr: %w", err)
		}
		chunks, err = r.ocr.Words(data)
		if err != nil {
			return nil, err
		}
	}

	return r.builder.Build(chunks)
}

// pagePNG returns a page as PNG data, asking the document for it when it can
// render PNG directly and encoding img otherwise.
func pagePNG(doc Document, n int, img image.Image) ([]byte, error) {
	if pr, ok := doc.(pngRenderer); ok {
		return pr.PNG(n)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func closeLogged(log *slog.Logger, doc Document) {
	if err := doc.Close(); err != nil {
		log.Warn("close failed", "error", err)
	}
}
