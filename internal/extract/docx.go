package extract

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var xmlTagRe = regexp.MustCompile(`<[^>]*>`)

// DOCX extracts text from the Word document at path, joining paragraphs with
// newlines. Unlike PDF extraction there is no partial-success policy: any
// parse error fails the whole document.
func (e *Extractor) DOCX(path string) (Document, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: open docx: %v", ErrExtraction, err)
	}
	defer doc.Close()

	text := docxParagraphs(doc.Editable().GetContent())
	if text == "" {
		return Document{}, fmt.Errorf("%w: docx: no text extracted", ErrExtraction)
	}
	return Document{Kind: KindDOCX, Text: text}, nil
}

// docxParagraphs flattens document.xml content into plain text, one line per
// paragraph.
func docxParagraphs(content string) string {
	var lines []string
	for _, para := range strings.Split(content, "</w:p>") {
		text := strings.TrimSpace(html.UnescapeString(xmlTagRe.ReplaceAllString(para, "")))
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
