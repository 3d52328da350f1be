package summarizer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestExtractGeminiText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text(" A fox "), genai.Text("jumps. ")},
			},
		}},
	}

	if got := extractGeminiText(resp); got != "A fox jumps." {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestExtractGeminiTextEmpty(t *testing.T) {
	if got := extractGeminiText(nil); got != "" {
		t.Fatalf("expected empty text for nil response, got %q", got)
	}

	if got := extractGeminiText(&genai.GenerateContentResponse{}); got != "" {
		t.Fatalf("expected empty text without candidates, got %q", got)
	}

	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}
	if got := extractGeminiText(resp); got != "" {
		t.Fatalf("expected empty text without content, got %q", got)
	}
}

func TestConfigureGeminiModelDeterministic(t *testing.T) {
	model := &genai.GenerativeModel{}
	configureGeminiModel(model, Request{Text: "text", MaxLength: 130, MinLength: 30})

	cfg := model.GenerationConfig
	if cfg.Temperature == nil || *cfg.Temperature != 0 {
		t.Fatalf("expected zero temperature, got %v", cfg.Temperature)
	}
	if cfg.TopK == nil || *cfg.TopK != 1 {
		t.Fatalf("expected top-k of 1, got %v", cfg.TopK)
	}
	if cfg.CandidateCount == nil || *cfg.CandidateCount != 1 {
		t.Fatalf("expected one candidate, got %v", cfg.CandidateCount)
	}
	if cfg.MaxOutputTokens == nil || *cfg.MaxOutputTokens != 130 {
		t.Fatalf("expected max output tokens of 130, got %v", cfg.MaxOutputTokens)
	}

	if model.SystemInstruction == nil || len(model.SystemInstruction.Parts) != 1 {
		t.Fatalf("expected a single system instruction part")
	}
	prompt, ok := model.SystemInstruction.Parts[0].(genai.Text)
	if !ok || !strings.Contains(string(prompt), "30 to 130 tokens") {
		t.Fatalf("expected bounds in system instruction, got %v", model.SystemInstruction.Parts[0])
	}
}

func TestConfigureGeminiModelSampling(t *testing.T) {
	model := &genai.GenerativeModel{}
	configureGeminiModel(model, Request{Text: "text", MaxLength: 60, MinLength: 10, DoSample: true})

	if model.Temperature != nil || model.TopK != nil {
		t.Fatalf("expected sampling settings to be left to the model defaults")
	}
	if model.MaxOutputTokens == nil || *model.MaxOutputTokens != 60 {
		t.Fatalf("expected max output tokens of 60, got %v", model.MaxOutputTokens)
	}
}

func TestGeminiSummarizerRejectsEmptyInput(t *testing.T) {
	g := &GeminiSummarizer{modelName: GeminiDefaultModel}

	if _, err := g.Summarize(context.Background(), Request{Text: "  \t"}); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}
