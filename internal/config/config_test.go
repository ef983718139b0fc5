package config

import (
	"os"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	// Save original env and restore after test
	originalEnv := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range originalEnv {
			// Parse and restore each env var
			for i, c := range env {
				if c == '=' {
					os.Setenv(env[:i], env[i+1:])
					break
				}
			}
		}
	}()

	// Clear env to test defaults
	os.Clearenv()

	cfg := Load()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Port", cfg.Port, 8080},
		{"LogLevel", cfg.LogLevel, "info"},
		{"MaxUploadSize", cfg.MaxUploadSize, int64(16 * 1024 * 1024)},
		{"GroqBaseURL", cfg.GroqBaseURL, "https://api.groq.com/openai/v1"},
		{"LLMModel", cfg.LLMModel, "llama3-8b-8192"},
		{"MaxExtractChars", cfg.MaxExtractChars, 10000},
		{"FetchTimeoutSecs", cfg.FetchTimeoutSecs, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %s=%v, got %v", tt.name, tt.expected, tt.got)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	// Save and restore env
	originalPort := os.Getenv("PORT")
	originalKey := os.Getenv("GROQ_API_KEY")
	defer func() {
		os.Setenv("PORT", originalPort)
		os.Setenv("GROQ_API_KEY", originalKey)
	}()

	// Set test values
	os.Setenv("PORT", "9090")
	os.Setenv("GROQ_API_KEY", "gsk_test")

	cfg := Load()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.GroqAPIKey != "gsk_test" {
		t.Errorf("expected api key 'gsk_test', got %s", cfg.GroqAPIKey)
	}
}
