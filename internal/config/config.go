package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds process-wide runtime configuration. Loaded once at startup
// and read-only afterwards.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Upload limits
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE" envDefault:"16777216"` // 16MB in bytes

	// Inference API (Groq exposes an OpenAI-compatible endpoint)
	GroqAPIKey  string `env:"GROQ_API_KEY"`
	GroqBaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	LLMModel    string `env:"LLM_MODEL" envDefault:"llama3-8b-8192"`

	// Extraction
	MaxExtractChars  int `env:"MAX_EXTRACT_CHARS" envDefault:"10000"`
	FetchTimeoutSecs int `env:"FETCH_TIMEOUT_SECS" envDefault:"10"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}
