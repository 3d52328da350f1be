package summarizer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// Options selects and configures a backend for New.
type Options struct {
	Provider string
	Model    string

	HTTPClient *http.Client

	HFBaseURL  string
	HFAPIToken string

	OpenAIAPIKey  string
	OpenAIBaseURL string

	GeminiAPIKey string
}

// New builds the backend named by opts.Provider.
func New(ctx context.Context, opts Options) (Summarizer, error) {
	var (
		s   Summarizer
		err error
	)

	switch strings.ToLower(strings.TrimSpace(opts.Provider)) {
	case HuggingFaceProvider:
		s, err = NewHuggingFaceSummarizer(opts.HTTPClient, opts.HFBaseURL, opts.HFAPIToken, opts.Model)
	case OpenAIProvider:
		s, err = NewOpenAISummarizer(opts.OpenAIAPIKey, opts.OpenAIBaseURL, opts.Model)
	case GeminiProvider:
		s, err = NewGeminiSummarizer(ctx, opts.GeminiAPIKey, opts.Model)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, opts.Provider)
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}
