package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	GeminiProvider     = "gemini"
	GeminiDefaultModel = "gemini-2.5-flash-lite"

	geminiSystemPromptTemplate = `Summarize the article provided by the user in %d to %d tokens.
Keep the core facts, use a neutral tone and plain prose, and answer only with the summary.`
)

// GeminiSummarizer implements Summarizer using Google's Gemini API.
type GeminiSummarizer struct {
	client    *genai.Client
	modelName string
}

func NewGeminiSummarizer(ctx context.Context, apiKey string, model string) (*GeminiSummarizer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s: API key is empty", GeminiProvider)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	model = strings.TrimSpace(model)
	if model == "" {
		model = GeminiDefaultModel
	}

	return &GeminiSummarizer{
		client:    client,
		modelName: model,
	}, nil
}

func (g *GeminiSummarizer) Model() string { return g.modelName }

func (g *GeminiSummarizer) Summarize(ctx context.Context, req Request) ([]Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	model := g.client.GenerativeModel(g.modelName)
	configureGeminiModel(model, req)

	resp, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	summary := extractGeminiText(resp)
	if summary == "" {
		return nil, ErrEmptyOutput
	}

	return []Result{{SummaryText: summary}}, nil
}

// configureGeminiModel applies the length bounds and, unless sampling is
// requested, greedy decoding.
func configureGeminiModel(model *genai.GenerativeModel, req Request) {
	model.SetCandidateCount(1)
	model.SetMaxOutputTokens(int32(req.MaxLength))
	if !req.DoSample {
		model.SetTemperature(0)
		model.SetTopK(1)
	}
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{
			genai.Text(fmt.Sprintf(geminiSystemPromptTemplate, req.MinLength, req.MaxLength)),
		},
	}
}

// Close closes the Gemini client.
func (g *GeminiSummarizer) Close() error {
	return g.client.Close()
}

func extractGeminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return ""
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}

	return strings.TrimSpace(b.String())
}
