// Package extract normalizes heterogeneous input sources (PDF and DOCX
// files, remote articles, inline text) into plain text for inference.
package extract

import (
	"errors"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"
)

// Kind identifies the source a document was extracted from.
type Kind string

const (
	KindPDF     Kind = "pdf"
	KindDOCX    Kind = "docx"
	KindArticle Kind = "article"
	KindInline  Kind = "inline"
)

// ErrExtraction marks document parsing or fetch failures. Always recoverable
// at the handler level (mapped to an error response), never fatal to the
// process.
var ErrExtraction = errors.New("extraction failed")

// Document is the normalized result of one extraction. Built per request and
// discarded when the request ends.
type Document struct {
	Kind      Kind
	Text      string
	Truncated bool
}

// Extractor converts stored documents and fetched resources into text.
// Safe for concurrent use; it holds no per-request state.
type Extractor struct {
	log      *slog.Logger
	maxChars int
	client   *http.Client
}

// New builds an Extractor. maxChars bounds PDF output size; fetchTimeout
// bounds the remote-article GET.
func New(log *slog.Logger, maxChars int, fetchTimeout time.Duration) *Extractor {
	if maxChars <= 0 {
		maxChars = 10000
	}
	if fetchTimeout <= 0 {
		fetchTimeout = 10 * time.Second
	}
	return &Extractor{
		log:      log,
		maxChars: maxChars,
		client:   &http.Client{Timeout: fetchTimeout},
	}
}

// capText limits s to max bytes without splitting a rune. Returns the capped
// string and whether anything was cut.
func capText(s string, max int) (string, bool) {
	if max <= 0 || len(s) <= max {
		return s, false
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut], true
}
