package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/harshupadhyay14/PDF-QA/internal/app"
	"github.com/harshupadhyay14/PDF-QA/internal/extract"
	"github.com/harshupadhyay14/PDF-QA/internal/httputil"
	"github.com/harshupadhyay14/PDF-QA/internal/upload"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

func main() {
	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	r := httputil.NewRouter(deps.Log)
	r.Get("/", indexHandler(deps))
	r.Post("/ask", askHandler(deps))
	r.Post("/qa", qaHandler(deps))
	r.Post("/summarize", summarizeHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	addr := fmt.Sprintf(":%d", deps.Config.Port)
	srv := &http.Server{Addr: addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		deps.Log.Info("server listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		deps.Log.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func indexHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := indexTmpl.Execute(w, nil); err != nil {
			deps.Log.Error("failed to render index", "err", err)
		}
	}
}

// askHandler accepts a multipart form with an optional file, question, and
// article URL, resolves the source and operation, and returns {"answer": ...}.
func askHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		r.Body = http.MaxBytesReader(w, r.Body, deps.Config.MaxUploadSize)
		if err := r.ParseMultipartForm(deps.Config.MaxUploadSize); err != nil {
			httputil.Fail(deps.Log, w, "invalid multipart form", err, http.StatusBadRequest)
			return
		}

		question := strings.TrimSpace(r.FormValue("question"))
		articleURL := strings.TrimSpace(r.FormValue("url"))
		file, header, fileErr := r.FormFile("file")
		if fileErr == nil {
			defer file.Close()
		}

		if question == "" && articleURL == "" && fileErr != nil {
			httputil.Fail(deps.Log, w, "please provide a question, an article URL, or a file", nil, http.StatusBadRequest)
			return
		}

		// URL takes priority over an uploaded file. Without a question the
		// article is summarized instead of answered against.
		if articleURL != "" {
			doc, err := deps.Extractor.Article(ctx, articleURL)
			if err != nil {
				failFrom(deps.Log, w, err)
				return
			}
			var out string
			if question == "" {
				out, err = deps.LLM.Summarize(ctx, doc.Text)
			} else {
				out, err = deps.LLM.Answer(ctx, question, doc.Text)
			}
			if err != nil {
				failFrom(deps.Log, w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, map[string]string{"answer": out})
			return
		}

		if fileErr == nil {
			doc, err := extractUpload(deps, file, header.Filename, question)
			if err != nil {
				failFrom(deps.Log, w, err)
				return
			}
			out, err := deps.LLM.Answer(ctx, question, doc.Text)
			if err != nil {
				failFrom(deps.Log, w, err)
				return
			}
			httputil.WriteJSON(w, http.StatusOK, map[string]string{"answer": out})
			return
		}

		httputil.Fail(deps.Log, w, "no file or URL provided", nil, http.StatusBadRequest)
	}
}

var (
	errUnsupportedType = errors.New("only PDF and DOCX files are supported")
	errMissingQuestion = errors.New("a question is required when uploading a file")
)

// extractUpload dispatches by file extension before any bytes touch disk.
func extractUpload(deps app.Deps, file io.Reader, filename, question string) (extract.Document, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" && ext != ".docx" {
		return extract.Document{}, errUnsupportedType
	}
	if question == "" {
		return extract.Document{}, errMissingQuestion
	}

	path, cleanup, err := upload.SaveTemp(file, filename)
	if err != nil {
		return extract.Document{}, fmt.Errorf("%w: save upload: %v", extract.ErrExtraction, err)
	}
	defer cleanup()

	if ext == ".pdf" {
		return deps.Extractor.PDF(path)
	}
	return deps.Extractor.DOCX(path)
}

// failFrom maps pipeline errors to the envelope: input problems are 400,
// extraction and inference failures are 500.
func failFrom(log *slog.Logger, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, errUnsupportedType) || errors.Is(err, errMissingQuestion) {
		status = http.StatusBadRequest
	}
	httputil.Fail(log, w, err.Error(), err, status)
}

type qaRequest struct {
	Question string `json:"question" validate:"required"`
	Context  string `json:"context" validate:"required"`
}

func qaHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, deps.Config.MaxUploadSize)
		var req qaRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		req.Question = strings.TrimSpace(req.Question)
		req.Context = strings.TrimSpace(req.Context)
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		answer, err := deps.LLM.Answer(r.Context(), req.Question, req.Context)
		if err != nil {
			failFrom(deps.Log, w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"answer": answer})
	}
}

type summarizeRequest struct {
	Text string `json:"text" validate:"required"`
}

func summarizeHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, deps.Config.MaxUploadSize)
		var req summarizeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid payload", err, http.StatusBadRequest)
			return
		}
		req.Text = strings.TrimSpace(req.Text)
		if err := httputil.Validator.Struct(&req); err != nil {
			httputil.ValidationError(deps.Log, w, err)
			return
		}

		summary, err := deps.LLM.Summarize(r.Context(), req.Text)
		if err != nil {
			failFrom(deps.Log, w, err)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"summary": summary})
	}
}
