package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxPages bounds how many pages are read from an uploaded plan.
// Large architectural sets routinely run to hundreds of sheets; the
// checklist evidence sits in the opening sheets.
const DefaultMaxPages = 8

// Extractor extracts plain text from PDF documents held in memory.
type Extractor struct {
	maxPages int
	logger   *slog.Logger
}

// New creates an extractor that reads at most maxPages pages per document.
// A non-positive maxPages falls back to DefaultMaxPages.
func New(maxPages int, logger *slog.Logger) *Extractor {
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{maxPages: maxPages, logger: logger}
}

// Text extracts plain text from the PDF bytes. It returns an error when the
// bytes are not a readable PDF; an empty string with a nil error means the
// document parsed but contained no extractable text (e.g. scanned images).
func (e *Extractor) Text(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("document is empty")
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	numPages := reader.NumPage()
	limit := numPages
	if limit > e.maxPages {
		limit = e.maxPages
	}

	var builder strings.Builder
	for i := 1; i <= limit; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Some pages fail to parse in otherwise readable documents.
			e.logger.Debug("skipping unparseable page", "page", i, "error", err)
			continue
		}

		if text != "" {
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	e.logger.Debug("extracted document text",
		"pages_total", numPages,
		"pages_read", limit,
		"chars", builder.Len(),
	)

	return builder.String(), nil
}

// Normalize folds text to lower case and collapses all runs of whitespace
// (including page breaks and newlines) into single spaces, which is the
// form the evaluator's detectors expect: a detection pattern may span what
// was a line break in the original layout.
func Normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
