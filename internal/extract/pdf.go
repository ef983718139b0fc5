package extract

import (
	"fmt"
	"strings"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
)

// pdfEngine extracts all pages of a PDF up to maxChars. Engines skip pages
// that fail to parse; an error means the engine could not read the document
// as a whole.
type pdfEngine struct {
	name    string
	extract func(path string, maxChars int) (string, bool, error)
}

// Engines are tried in order until one succeeds. MuPDF handles more
// real-world documents, so it goes first; the pure-Go reader is the fallback.
var pdfEngines = []pdfEngine{
	{name: "mupdf", extract: extractPDFWithFitz},
	{name: "ledongthuc", extract: extractPDFWithReader},
}

// PDF extracts text from the PDF at path. Per-page parse failures are
// skipped; extraction stops early once maxChars is reached.
func (e *Extractor) PDF(path string) (Document, error) {
	var lastErr error
	for _, eng := range pdfEngines {
		text, truncated, err := eng.extract(path, e.maxChars)
		if err != nil {
			e.log.Warn("pdf engine failed, trying next", "engine", eng.name, "err", err)
			lastErr = err
			continue
		}
		return Document{Kind: KindPDF, Text: strings.TrimSpace(text), Truncated: truncated}, nil
	}
	return Document{}, fmt.Errorf("%w: pdf: %v", ErrExtraction, lastErr)
}

func extractPDFWithFitz(path string, maxChars int) (string, bool, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", false, fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}
		sb.WriteString(text)
		if sb.Len() >= maxChars {
			break
		}
	}
	text, truncated := capText(sb.String(), maxChars)
	return text, truncated, nil
}

func extractPDFWithReader(path string, maxChars int) (string, bool, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", false, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	numPages := reader.NumPage()
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Skip pages that fail to extract
			continue
		}
		sb.WriteString(text)
		if sb.Len() >= maxChars {
			break
		}
	}
	text, truncated := capText(sb.String(), maxChars)
	return text, truncated, nil
}
