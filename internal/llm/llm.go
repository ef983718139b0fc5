package llm

import (
	"context"
	"errors"
)

// ErrInference marks failures of the remote inference call. Handlers map it
// to a 500 response; it is never retried or cached.
var ErrInference = errors.New("inference failed")

// Client is a minimal LLM interface to allow pluggable providers.
type Client interface {
	Answer(ctx context.Context, question, contextText string) (string, error)
	Summarize(ctx context.Context, text string) (string, error)
}
