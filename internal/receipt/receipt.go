// Package receipt checks generated PDF receipts and statements for expected text.
package receipt

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/ibcheck/ibcheck/internal/match"
)

// Extractor returns the plain text of a document.
type Extractor interface {
	Text(path string) (string, error)
}

// PDFExtractor reads text from every page of a PDF.
type PDFExtractor struct{}

// Text concatenates the plain text of all pages, one page per line.
func (PDFExtractor) Text(path string) (text string, err error) {
	// The pdf reader panics on some malformed content streams.
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("reading %s: %v", path, p)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extracting text from page %d: %w", i, err)
		}
		b.WriteString(pageText)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Report is the outcome of checking one document.
type Report struct {
	Path    string
	Missing []string
}

// Pass reports whether every expected term was found.
func (r Report) Pass() bool {
	return len(r.Missing) == 0
}

// Verify extracts the text at path and looks for every term in it.
func Verify(ex Extractor, path string, terms []string) (Report, error) {
	text, err := ex.Text(path)
	if err != nil {
		return Report{}, err
	}
	if strings.TrimSpace(text) == "" {
		return Report{}, fmt.Errorf("%s: no text found", path)
	}
	return Report{Path: path, Missing: match.Missing(text, terms)}, nil
}
