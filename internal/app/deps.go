package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"github.com/harshupadhyay14/PDF-QA/internal/config"
	"github.com/harshupadhyay14/PDF-QA/internal/extract"
	"github.com/harshupadhyay14/PDF-QA/internal/llm"
	"github.com/harshupadhyay14/PDF-QA/internal/logger"
)

// Deps bundles common runtime dependencies. Built once at startup and
// read-only afterwards; no request mutates it.
type Deps struct {
	Config    config.Config
	Log       *slog.Logger
	Extractor *extract.Extractor
	LLM       llm.Client
}

// Build loads env, config, and shared components. A missing inference
// credential is fatal here rather than at first use.
func Build() (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	llmClient, err := buildLLM(cfg, log)
	if err != nil {
		return Deps{}, fmt.Errorf("failed to initialize LLM: %w", err)
	}

	extractor := extract.New(log, cfg.MaxExtractChars, time.Duration(cfg.FetchTimeoutSecs)*time.Second)

	return Deps{
		Config:    cfg,
		Log:       log,
		Extractor: extractor,
		LLM:       llmClient,
	}, nil
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	if cfg.GroqAPIKey == "" {
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	client, err := llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, openai.ChatModel(cfg.LLMModel))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Groq client: %w", err)
	}
	log.Info("using Groq inference client", "model", cfg.LLMModel)
	return client, nil
}
