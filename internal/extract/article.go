package extract

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Article fetches the resource at url and returns its body as text. The body
// is passed through verbatim (trimmed only) — no HTML-to-text cleanup is
// performed, matching the summarizer's expectation of raw page content.
func (e *Extractor) Article(ctx context.Context, url string) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Document{}, fmt.Errorf("%w: fetch article: %v", ErrExtraction, err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("%w: fetch article: %v", ErrExtraction, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return Document{}, fmt.Errorf("%w: fetch article: status %d", ErrExtraction, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Document{}, fmt.Errorf("%w: read article body: %v", ErrExtraction, err)
	}
	return Document{Kind: KindArticle, Text: strings.TrimSpace(string(body))}, nil
}
