//go:build ocr

// Package ocr turns scanned images of glyph sheets back into text lines.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system and the "ocr" build tag. On macOS,
// install via:
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
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
}

// New creates a new OCR client configured for glyph sheets: a single block
// of text, only the glyph characters allowed, and interior spacing kept.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	client := gosseract.NewClient()
	c := &Client{client: client}

	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if err := client.SetWhitelist(Alphabet); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to set whitelist: %w", err)
	}
	if err := client.SetVariable("preserve_interword_spaces", "1"); err != nil {
		c.Close()
		return nil, fmt.Errorf("failed to preserve spacing: %w", err)
	}
	return c, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		return c.client.Close()
	}
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns the raw recognized text.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	normalized, err := Normalize(imageData)
	if err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(normalized); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// RecognizeLines performs OCR on image data and splits the result into
// lines with column spacing preserved.
func (c *Client) RecognizeLines(imageData []byte) ([]string, error) {
	text, err := c.RecognizeImage(imageData)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

// SetLanguage sets the language(s) for OCR recognition.
// Multiple languages can be specified as a "+" separated string (e.g., "eng+fra").
// Default is "eng" (English).
func (c *Client) SetLanguage(lang string) error {
	return c.client.SetLanguage(lang)
}

// SetPageSegMode sets the page segmentation mode.
func (c *Client) SetPageSegMode(mode PageSegMode) error {
	return c.client.SetPageSegMode(gosseract.PageSegMode(mode))
}
