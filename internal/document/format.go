// Package document turns uploaded resume files into plain text.
package document

import (
	"path/filepath"
	"strings"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDOC  = "application/msword"
)

// RawDocument is an uploaded file's bytes plus the format it was declared as.
type RawDocument struct {
	Data   []byte
	Format Format
}

// FormatFromFilename dispatches on the file extension. Legacy .doc uploads are
// routed to the docx reader, which rejects them if they are not OOXML archives.
func FormatFromFilename(name string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".pdf":
		return FormatPDF, nil
	case ".docx", ".doc":
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: ext}
	}
}

func FormatFromMIME(mime string) (Format, error) {
	// browsers sometimes append parameters, e.g. "application/pdf; charset=binary"
	base, _, _ := strings.Cut(mime, ";")
	switch strings.TrimSpace(strings.ToLower(base)) {
	case mimePDF:
		return FormatPDF, nil
	case mimeDOCX, mimeDOC:
		return FormatDOCX, nil
	default:
		return "", &UnsupportedFormatError{Format: mime}
	}
}
