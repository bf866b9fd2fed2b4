// Package extractor turns uploaded document bytes into plain text.
package extractor

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// ErrExtractionFailed wraps every extraction failure, including documents that
// parse cleanly but contain no text.
var ErrExtractionFailed = errors.New("text extraction failed")

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "text"
)

var (
	utf8BOM  = []byte("\xef\xbb\xbf")
	pdfMagic = []byte("%PDF-")
	zipMagic = []byte("PK\x03\x04")
)

type Extractor interface {
	Extract(data []byte) (string, error)
}

type extractor struct{}

func NewExtractor() Extractor {
	return extractor{}
}

// Detect picks a format from the payload itself. Declared media types are not trusted.
// A PDF header only counts at the start of the payload, after an optional BOM and
// leading whitespace, so text that merely mentions one stays text.
func Detect(data []byte) Format {
	head := bytes.TrimLeft(bytes.TrimPrefix(data, utf8BOM), " \t\r\n\f\x00")

	switch {
	case bytes.HasPrefix(head, pdfMagic):
		return FormatPDF
	case bytes.HasPrefix(data, zipMagic):
		return FormatDOCX
	default:
		return FormatText
	}
}

func (extractor) Extract(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty document", ErrExtractionFailed)
	}

	var (
		text string
		err  error
	)

	format := Detect(data)
	switch format {
	case FormatPDF:
		text, err = ExtractPDF(data)
	case FormatDOCX:
		text, err = ExtractDOCX(data)
	default:
		text, err = ExtractTXT(data)
	}

	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrExtractionFailed, format, err)
	}

	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s: no text extracted", ErrExtractionFailed, format)
	}

	return text, nil
}
