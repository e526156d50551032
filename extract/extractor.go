// Package extract turns uploaded resume files into plain text.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const (
	MimePDF  = "application/pdf"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeText = "text/plain"
)

var (
	// ErrExtractionFailed means the document produced no usable text.
	ErrExtractionFailed = errors.New("could not extract text from document")
	// ErrUnsupportedType means the upload is not a PDF, DOCX or plain text file.
	ErrUnsupportedType = errors.New("unsupported document type")
)

// Extractor turns document bytes into best-effort plain text.
type Extractor interface {
	Extract(data []byte) (Document, error)
}

// Document is the result of a successful extraction.
type Document struct {
	Text     string
	MimeType string
	Pages    int
}

// decoder is the per-format step behind Extractor.
type decoder func(data []byte) (text string, pages int, err error)

// MultiFormat sniffs the content type and dispatches to the matching decoder.
type MultiFormat struct {
	decoders map[string]decoder
}

// New returns an Extractor that understands PDF, DOCX and plain text.
func New() *MultiFormat {
	return &MultiFormat{
		decoders: map[string]decoder{
			MimePDF:  pdfText,
			MimeDOCX: docxText,
			MimeText: plainText,
		},
	}
}

// Extract returns the document text. Blank results, parse failures and unknown types all
// wrap ErrExtractionFailed so callers only need one check.
func (m *MultiFormat) Extract(data []byte) (Document, error) {
	mimeType := DetectType(data)

	decode, ok := m.decoders[mimeType]
	if !ok {
		return Document{MimeType: mimeType}, fmt.Errorf("%w: %w: %s", ErrExtractionFailed, ErrUnsupportedType, mimeType)
	}

	text, pages, err := decode(data)
	if err != nil {
		return Document{MimeType: mimeType}, fmt.Errorf("%w: %w", ErrExtractionFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return Document{MimeType: mimeType, Pages: pages}, ErrExtractionFailed
	}

	return Document{Text: text, MimeType: mimeType, Pages: pages}, nil
}

// DetectType reports the base content type of data, without parameters.
func DetectType(data []byte) string {
	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		switch {
		case m.Is(MimePDF):
			return MimePDF
		case m.Is(MimeDOCX):
			return MimeDOCX
		case m.Is(MimeText):
			return MimeText
		}
	}
	base, _, _ := strings.Cut(detected.String(), ";")
	return base
}

func plainText(data []byte) (string, int, error) {
	return string(data), 1, nil
}
