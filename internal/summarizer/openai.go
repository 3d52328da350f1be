package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	OpenAIProvider     = "openai"
	OpenAIDefaultModel = "gpt-4o-mini"

	// Fixed seed keeps repeated calls as repeatable as the API allows.
	openAISeed int64 = 42

	openAISystemPromptTemplate = `Summarize the article provided by the user.

Rules:
- Between %d and %d tokens.
- Keep the core facts: who, what, when, numbers and names.
- Neutral tone, plain prose, no lists, no headings.
- Output only the summary in the same language as the input.`
)

// OpenAISummarizer calls OpenAI's Chat Completions API to produce summaries.
type OpenAISummarizer struct {
	client openai.Client
	model  string
}

// NewOpenAISummarizer builds a new summarizer instance. An empty baseURL keeps
// the SDK default endpoint.
func NewOpenAISummarizer(apiKey string, baseURL string, model string) (*OpenAISummarizer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s: API key is empty", OpenAIProvider)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}

	model = strings.TrimSpace(model)
	if model == "" {
		model = OpenAIDefaultModel
	}

	return &OpenAISummarizer{
		client: openai.NewClient(opts...),
		model:  model,
	}, nil
}

func (s *OpenAISummarizer) Model() string { return s.model }

// Summarize produces a single summary. The lower bound is only expressed in
// the prompt since the API has no minimum length parameter.
func (s *OpenAISummarizer) Summarize(ctx context.Context, req Request) ([]Result, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, ErrEmptyInput
	}

	params := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(s.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(fmt.Sprintf(openAISystemPromptTemplate, req.MinLength, req.MaxLength)),
			openai.UserMessage(text),
		},
		MaxCompletionTokens: openai.Int(int64(req.MaxLength)),
		N:                   openai.Int(1),
	}
	if !req.DoSample {
		params.Temperature = openai.Float(0)
		params.Seed = openai.Int(openAISeed)
	}

	resp, err := s.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w (choices = 0)", ErrEmptyOutput)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return nil, fmt.Errorf("%w (finish reason = %s)", ErrEmptyOutput, resp.Choices[0].FinishReason)
	}

	return []Result{{SummaryText: summary}}, nil
}
