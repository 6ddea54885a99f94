package document

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog/log"
)

// PDFPages returns the text of every page in page order. Pages that hold no
// extractable text (scanned images, blank pages, undecodable fonts) yield an
// empty segment, so len(result) always equals the page count.
func PDFPages(data []byte) (pages []string, err error) {
	// the pdf package panics on several classes of malformed input
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read pdf: %w", err)
	}

	numPages := pdfReader.NumPage()
	pages = make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			log.Debug().Int("page", i).Err(err).Msg("pdf page has no extractable text")
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}
