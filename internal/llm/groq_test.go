package llm

import (
	"strings"
	"testing"
)

func TestNewGroqClientRequiresKey(t *testing.T) {
	if _, err := NewGroqClient("", "https://api.groq.com/openai/v1", "llama3-8b-8192"); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestNewGroqClientDefaultModel(t *testing.T) {
	c, err := NewGroqClient("gsk_test", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.model != "llama3-8b-8192" {
		t.Errorf("expected default model, got %s", c.model)
	}
}

func TestAnswerPrompt(t *testing.T) {
	got := answerPrompt("What is Go?", "Go is a language.")
	want := "Context: Go is a language.\n\nQuestion: What is Go?"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSummarizePrompt(t *testing.T) {
	got := summarizePrompt("Some long text.")
	if !strings.HasPrefix(got, "Summarize the following text:\n") {
		t.Errorf("unexpected prompt prefix: %q", got)
	}
	if !strings.HasSuffix(got, "Some long text.") {
		t.Errorf("prompt should end with the input text: %q", got)
	}
}

func TestBuildMessages(t *testing.T) {
	msgs := buildMessages("system prompt", "user prompt")
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].OfSystem == nil {
		t.Error("first message should be the system role")
	}
	if msgs[1].OfUser == nil {
		t.Error("second message should be the user role")
	}
}
