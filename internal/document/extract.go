package document

import (
	"strings"
)

// PageReader splits a PDF into per-page text segments.
type PageReader interface {
	Pages(data []byte) ([]string, error)
}

// ParagraphReader splits a DOCX into per-paragraph text segments.
type ParagraphReader interface {
	Paragraphs(data []byte) ([]string, error)
}

// PageReaderFunc adapts a function to PageReader.
type PageReaderFunc func(data []byte) ([]string, error)

func (f PageReaderFunc) Pages(data []byte) ([]string, error) { return f(data) }

// ParagraphReaderFunc adapts a function to ParagraphReader.
type ParagraphReaderFunc func(data []byte) ([]string, error)

func (f ParagraphReaderFunc) Paragraphs(data []byte) ([]string, error) { return f(data) }

// Extractor converts raw documents into plain text.
type Extractor struct {
	pdf  PageReader
	docx ParagraphReader
}

type Option func(*Extractor)

func WithPageReader(r PageReader) Option {
	return func(e *Extractor) {
		e.pdf = r
	}
}

func WithParagraphReader(r ParagraphReader) Option {
	return func(e *Extractor) {
		e.docx = r
	}
}

// NewExtractor returns an Extractor backed by the ledongthuc/pdf and
// nguyenthenguyen/docx readers unless overridden.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		pdf:  PageReaderFunc(PDFPages),
		docx: ParagraphReaderFunc(DOCXParagraphs),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the document's text in source order. PDF pages are joined
// with a newline; a PDF whose pages are all blank yields "". Every DOCX
// paragraph, empty ones included, is followed by a newline.
func (e *Extractor) Extract(raw RawDocument) (string, error) {
	switch raw.Format {
	case FormatPDF:
		pages, err := e.pdf.Pages(raw.Data)
		if err != nil {
			return "", &ExtractionError{Format: FormatPDF, Cause: err}
		}
		return joinPages(pages), nil

	case FormatDOCX:
		paragraphs, err := e.docx.Paragraphs(raw.Data)
		if err != nil {
			return "", &ExtractionError{Format: FormatDOCX, Cause: err}
		}
		var textBuilder strings.Builder
		for _, p := range paragraphs {
			textBuilder.WriteString(p)
			textBuilder.WriteByte('\n')
		}
		return textBuilder.String(), nil

	default:
		return "", &UnsupportedFormatError{Format: string(raw.Format)}
	}
}

// ExtractFile picks the format from the filename and extracts the text.
func (e *Extractor) ExtractFile(name string, data []byte) (string, error) {
	format, err := FormatFromFilename(name)
	if err != nil {
		return "", err
	}
	return e.Extract(RawDocument{Data: data, Format: format})
}

func joinPages(pages []string) string {
	blank := true
	for _, p := range pages {
		if strings.TrimSpace(p) != "" {
			blank = false
			break
		}
	}
	if blank {
		return ""
	}
	return strings.Join(pages, "\n")
}

var defaultExtractor = NewExtractor()

// Extract uses the default readers.
func Extract(raw RawDocument) (string, error) {
	return defaultExtractor.Extract(raw)
}

// ExtractFile uses the default readers.
func ExtractFile(name string, data []byte) (string, error) {
	return defaultExtractor.ExtractFile(name, data)
}
