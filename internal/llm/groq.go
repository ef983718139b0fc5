package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// GroqClient calls Groq's OpenAI-compatible Chat Completions API.
type GroqClient struct {
	model  openai.ChatModel
	client *openai.Client
}

const (
	defaultChatTimeout = 30 * time.Second

	// Low temperature keeps answers close to the provided context.
	chatTemperature = 0.3

	answerMaxTokens    = 500
	summarizeMaxTokens = 300

	answerSystemPrompt    = "You are a helpful assistant."
	summarizeSystemPrompt = "You are a helpful summarizer."
)

// NewGroqClient builds a client against the given OpenAI-compatible base URL.
func NewGroqClient(apiKey, baseURL string, model openai.ChatModel) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("api key required")
	}
	if model == "" {
		model = "llama3-8b-8192"
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	cli := openai.NewClient(opts...)
	return &GroqClient{
		model:  model,
		client: &cli,
	}, nil
}

// Answer asks one question against the supplied context. A single remote
// call per invocation; no retry, no streaming.
func (c *GroqClient) Answer(ctx context.Context, question, contextText string) (string, error) {
	return c.complete(ctx, answerSystemPrompt, answerPrompt(question, contextText), answerMaxTokens)
}

// Summarize condenses the supplied text.
func (c *GroqClient) Summarize(ctx context.Context, text string) (string, error) {
	return c.complete(ctx, summarizeSystemPrompt, summarizePrompt(text), summarizeMaxTokens)
}

func (c *GroqClient) complete(ctx context.Context, system, user string, maxTokens int64) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("%w: nil groq client", ErrInference)
	}
	reqCtx, cancel := context.WithTimeout(ctx, defaultChatTimeout)
	defer cancel()
	resp, err := c.client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Model:       c.model,
		Messages:    buildMessages(system, user),
		Temperature: openai.Float(chatTemperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInference, err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no choices returned", ErrInference)
	}
	return resp.Choices[0].Message.Content, nil
}

func answerPrompt(question, contextText string) string {
	return fmt.Sprintf("Context: %s\n\nQuestion: %s", contextText, question)
}

func summarizePrompt(text string) string {
	return "Summarize the following text:\n" + text
}

func buildMessages(system, user string) []openai.ChatCompletionMessageParamUnion {
	return []openai.ChatCompletionMessageParamUnion{
		{
			OfSystem: &openai.ChatCompletionSystemMessageParam{
				Content: openai.ChatCompletionSystemMessageParamContentUnion{
					OfString: openai.String(system),
				},
			},
		},
		{
			OfUser: &openai.ChatCompletionUserMessageParam{
				Content: openai.ChatCompletionUserMessageParamContentUnion{
					OfString: openai.String(user),
				},
			},
		},
	}
}
