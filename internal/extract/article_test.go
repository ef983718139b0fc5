package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestArticleSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "  <html><body>article body</body></html>\n")
	}))
	defer srv.Close()

	e := newTestExtractor(10000)
	doc, err := e.Article(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Kind != KindArticle {
		t.Errorf("expected kind %s, got %s", KindArticle, doc.Kind)
	}
	// Raw body passed through, trimmed only — markup is kept.
	if doc.Text != "<html><body>article body</body></html>" {
		t.Errorf("unexpected text: %q", doc.Text)
	}
}

func TestArticleErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	e := newTestExtractor(10000)
	_, err := e.Article(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 503 response")
	}
	if !errors.Is(err, ErrExtraction) {
		t.Errorf("expected ErrExtraction, got %v", err)
	}
}

func TestArticleTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	e := New(slog.New(slog.NewTextHandler(io.Discard, nil)), 10000, 50*time.Millisecond)
	_, err := e.Article(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, ErrExtraction) {
		t.Errorf("expected ErrExtraction, got %v", err)
	}
}

func TestArticleInvalidURL(t *testing.T) {
	e := newTestExtractor(10000)
	_, err := e.Article(context.Background(), "http://[::1]:namedport")
	if err == nil {
		t.Fatal("expected error for invalid URL")
	}
	if !errors.Is(err, ErrExtraction) {
		t.Errorf("expected ErrExtraction, got %v", err)
	}
}
