//go:build ocr

// Package ocr recognizes words on rendered page images so that pages without
// a text layer can still be compared.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/tsawler/pagediff/text"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
	opts   Options
}

// New creates a new OCR client.
// The client should be closed when no longer needed to release resources.
func New(opts Options) (*Client, error) {
	client := gosseract.NewClient()
	c := &Client{client: client, opts: opts.withDefaults()}
	if err := client.SetLanguage(c.opts.Language); err != nil {
		client.Close()
		return nil, fmt.Errorf("ocr: set language %q: %w", c.opts.Language, err)
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// Words recognizes the words of a page image and returns them as chunks in
// reading order, ready for the word builder.
func (c *Client) Words(imageData []byte) ([]text.Chunk, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("ocr: set image: %w", err)
	}

	found, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("ocr: word boxes: %w", err)
	}

	boxes := make([]Box, len(found))
	for i, b := range found {
		boxes[i] = Box{Rect: b.Box, Word: b.Word, Confidence: b.Confidence}
	}
	return Chunks(boxes, c.opts), nil
}
