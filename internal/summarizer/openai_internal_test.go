package summarizer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const chatCompletionResponse = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [{
    "index": 0,
    "finish_reason": "stop",
    "message": {"role": "assistant", "content": "  A fox jumps over a dog.  "}
  }]
}`

func TestOpenAISummarizerDeterministicRequest(t *testing.T) {
	var body map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}

		raw, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("read body: %v", err)
		}
		if err = json.Unmarshal(raw, &body); err != nil {
			t.Errorf("decode body: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chatCompletionResponse))
	}))
	defer srv.Close()

	s, err := NewOpenAISummarizer("sk-test", srv.URL+"/v1/", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	results, err := s.Summarize(context.Background(), Request{
		Text:      "The quick brown fox jumps over the lazy dog.",
		MaxLength: 130,
		MinLength: 30,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 1 || results[0].SummaryText != "A fox jumps over a dog." {
		t.Fatalf("unexpected results: %+v", results)
	}

	if body["model"] != OpenAIDefaultModel {
		t.Fatalf("unexpected model: %v", body["model"])
	}
	if body["temperature"] != float64(0) {
		t.Fatalf("expected zero temperature, got %v", body["temperature"])
	}
	if body["seed"] != float64(openAISeed) {
		t.Fatalf("unexpected seed: %v", body["seed"])
	}
	if body["max_completion_tokens"] != float64(130) {
		t.Fatalf("unexpected max_completion_tokens: %v", body["max_completion_tokens"])
	}

	messages, ok := body["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("unexpected messages: %v", body["messages"])
	}

	system, _ := messages[0].(map[string]any)
	if content, _ := system["content"].(string); !strings.Contains(content, "Between 30 and 130 tokens") {
		t.Fatalf("expected bounds in system prompt, got %q", content)
	}
}

func TestOpenAISummarizerRequiresKey(t *testing.T) {
	if _, err := NewOpenAISummarizer(" ", "", ""); err == nil {
		t.Fatalf("expected error for empty API key")
	}
}
