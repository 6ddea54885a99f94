package document

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

// DOCXParagraphs returns the text of every w:p element of word/document.xml
// in document order, including empty paragraphs.
func DOCXParagraphs(data []byte) ([]string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return paragraphsFromXML(doc.Editable().GetContent())
}

func paragraphsFromXML(content string) ([]string, error) {
	decoder := xml.NewDecoder(strings.NewReader(content))

	var (
		paragraphs []string
		// text boxes nest paragraphs inside runs, so keep one builder per open w:p
		open   []*strings.Builder
		inText bool
		// w:tab also declares tab stops inside w:pPr; only runs carry content
		runDepth int
	)
	current := func() *strings.Builder {
		if len(open) == 0 {
			return nil
		}
		return open[len(open)-1]
	}

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				open = append(open, &strings.Builder{})
			case "r":
				runDepth++
			case "t":
				inText = true
			case "tab":
				if b := current(); b != nil && runDepth > 0 {
					b.WriteByte('\t')
				}
			case "br", "cr":
				if b := current(); b != nil && runDepth > 0 {
					b.WriteByte('\n')
				}
			}
		case xml.CharData:
			if b := current(); b != nil && inText {
				b.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "r":
				if runDepth > 0 {
					runDepth--
				}
			case "t":
				inText = false
			case "p":
				if b := current(); b != nil {
					paragraphs = append(paragraphs, b.String())
					open = open[:len(open)-1]
				}
			}
		}
	}
	return paragraphs, nil
}
