// Command pagediff compares PDF documents page by page.
//
// Usage:
//
//	pagediff -config batch.yaml                        # compare every row of a batch file
//	pagediff -source old.pdf -target new.pdf           # compare two documents
//	pagediff -source a.pdf -target b.pdf -pages 1-3 -target-pages 2-4 -report out/report.html
//
// The exit status is 1 when any row failed and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tsawler/pagediff"
	"github.com/tsawler/pagediff/report"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if !errors.Is(err, errUsage) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, "pagediff:", err)
		}
		return exitUsage
	}

	logger := newLogger(stderr, cfg)
	cfg.Logger = logger

	batch := cfg.Comparer().Run(ctx, cfg.Rows)

	for _, r := range batch.Rows {
		status := "ok"
		if r.Err != nil {
			status = "FAILED: " + r.Err.Error()
		}
		s := r.Stats()
		fmt.Fprintf(stdout, "%d. %s vs %s: %d pages, +%d -%d font %d size %d style %d, %s\n",
			r.Index+1, r.Row.Source, r.Row.Target, len(r.Pages),
			s.Added, s.Deleted, s.FontChanged, s.SizeChanged, s.StyleChanged, status)
		for _, w := range r.Warnings {
			fmt.Fprintf(stdout, "   warning: %s\n", w)
		}
	}

	if cfg.Report != "" {
		if err := writeReport(cfg.Report, batch.Report()); err != nil {
			logger.Error("pagediff: report failed", "error", err)
			return exitFailed
		}
		logger.Info("report written", "path", cfg.Report)
	}

	if batch.Failed() > 0 {
		return exitFailed
	}
	return exitOK
}

// parseArgs builds the batch configuration from a config file or from
// single-row flags. Flags given explicitly override file values.
func parseArgs(args []string, stderr io.Writer) (*pagediff.Config, error) {
	fs := flag.NewFlagSet("pagediff", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "path to a batch YAML file")
	source := fs.String("source", "", "source (original) document")
	target := fs.String("target", "", "target (revised) document")
	pages := fs.String("pages", "", "source page range, e.g. 1-3,5 (default: all)")
	targetPages := fs.String("target-pages", "", "target page range (default: same as -pages)")
	out := fs.String("out", "", "output directory for page images")
	dpi := fs.Float64("dpi", 0, "render resolution")
	format := fs.String("format", "", "image format: png, bmp, tiff")
	reportPath := fs.String("report", "", "write an HTML report to this path")
	ocrLang := fs.String("ocr", "", "enable OCR for pages without text, with this language (e.g. eng)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFormat := fs.String("log-format", "", "log format: text, json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := pagediff.DefaultConfig()
	if *configPath != "" {
		loaded, err := pagediff.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	switch {
	case *source != "" && *target != "":
		tp := *targetPages
		if tp == "" {
			tp = *pages
		}
		cfg.Rows = append(cfg.Rows, pagediff.Row{Source: *source, Target: *target, SourcePages: *pages, TargetPages: tp})
	case *source != "" || *target != "":
		return nil, fmt.Errorf("-source and -target must be given together")
	}

	if len(cfg.Rows) == 0 {
		fmt.Fprintln(stderr, "usage: pagediff -config <file> | -source <pdf> -target <pdf> [flags]")
		fs.PrintDefaults()
		return nil, errUsage
	}

	if *out != "" {
		cfg.Output = *out
	}
	if *dpi != 0 {
		cfg.DPI = *dpi
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *reportPath != "" {
		cfg.Report = *reportPath
	}
	if *ocrLang != "" {
		cfg.OCR = true
		cfg.OCRLanguage = *ocrLang
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(w io.Writer, cfg *pagediff.Config) *slog.Logger {
	level, _ := pagediff.ParseLevel(cfg.LogLevel)
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func writeReport(path string, doc report.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := report.Render(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
