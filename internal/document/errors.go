package document

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrExtraction        = errors.New("document extraction failed")
)

// UnsupportedFormatError is returned when a document is neither pdf nor docx.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	if e.Format == "" {
		return ErrUnsupportedFormat.Error()
	}
	return fmt.Sprintf("%s: %q", ErrUnsupportedFormat, e.Format)
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ExtractionError wraps the parser failure for a corrupt, encrypted or
// otherwise unreadable document.
type ExtractionError struct {
	Format Format
	Cause  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrExtraction, e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}
