package summarizer

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrEmptyInput      = errors.New("input is empty")
	ErrEmptyOutput     = errors.New("output text is missing")
	ErrUnknownProvider = errors.New("unknown provider")
)

// Request describes one summarization call.
type Request struct {
	// Text is the document to summarise.
	Text string
	// MaxLength and MinLength bound the summary size in model output tokens.
	MaxLength int
	MinLength int
	// DoSample enables random sampling. The pipeline always sends false.
	DoSample bool
}

// Result is a single generated summary record.
type Result struct {
	SummaryText string `json:"summary_text"`
}

// Summarizer invokes an external summarization model. Implementations return
// the model's native sequence of results unchanged.
type Summarizer interface {
	Summarize(ctx context.Context, req Request) ([]Result, error)
}

// APIError is a non-success answer from a remote model endpoint.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error (status = %d): %s", e.Provider, e.StatusCode, e.Message)
}
