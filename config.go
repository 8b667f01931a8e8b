package pagediff

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/pagediff/align"
	"github.com/tsawler/pagediff/render"
)

// Config is the file form of a comparison batch.
type Config struct {
	Output         string  `yaml:"output"`
	DPI            float64 `yaml:"dpi"`
	Format         string  `yaml:"format"`
	Highlight      string  `yaml:"highlight"` // #rrggbb
	JoinWrapped    bool    `yaml:"join_wrapped"`
	MinVisibleSize int     `yaml:"min_visible_size"`
	OCR            bool    `yaml:"ocr"`
	OCRLanguage    string  `yaml:"ocr_language"`
	ValidateInput  bool    `yaml:"validate"`
	Report         string  `yaml:"report"`
	LogLevel       string  `yaml:"log_level"`  // debug | info | warn | error
	LogFormat      string  `yaml:"log_format"` // text | json
	Rows           []Row   `yaml:"rows"`

	// Logger is used by Comparer; nil means slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns sane defaults.
func DefaultConfig() *Config {
	return &Config{
		Output:         "output",
		DPI:            render.DefaultDPI,
		Format:         string(align.PNG),
		Highlight:      "#ff0000",
		JoinWrapped:    true,
		MinVisibleSize: 1,
		OCRLanguage:    "eng",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// LoadConfig reads and parses a YAML config file. Returns DefaultConfig merged with the file.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks that required fields are present and values are sane.
func (c *Config) Validate() error {
	if c.Output == "" {
		return fmt.Errorf("output is required")
	}
	if c.DPI <= 0 {
		return fmt.Errorf("dpi must be > 0")
	}
	if _, err := align.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := ParseColor(c.Highlight); err != nil {
		return err
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("unsupported log_format %q (use text or json)", c.LogFormat)
	}
	for i, r := range c.Rows {
		if r.Source == "" {
			return fmt.Errorf("rows[%d]: source is required", i)
		}
		if r.Target == "" {
			return fmt.Errorf("rows[%d]: target is required", i)
		}
	}
	return nil
}

// Comparer returns a Comparer configured from c. Invalid values surface
// through Comparer.Err.
func (c *Config) Comparer() *Comparer {
	cmp := New().
		Output(c.Output).
		DPI(c.DPI).
		Format(align.Format(c.Format)).
		JoinWrapped(c.JoinWrapped).
		MinVisibleSize(c.MinVisibleSize).
		Logger(c.Logger)

	if col, err := ParseColor(c.Highlight); err != nil {
		cmp = cmp.fail(err)
	} else {
		cmp = cmp.Highlight(col)
	}
	if c.OCR {
		cmp = cmp.OCR(c.OCRLanguage)
	}
	if c.ValidateInput {
		cmp = cmp.ValidateInput()
	}
	return cmp
}

// ParseColor parses a #rrggbb or #rrggbbaa colour.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q (use #rrggbb)", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unsupported log_level %q: %w", s, err)
	}
	return level, nil
}
