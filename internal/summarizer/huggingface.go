package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	HuggingFaceProvider     = "huggingface"
	HuggingFaceDefaultModel = "facebook/bart-large-cnn"

	maxErrorBodyBytes = 4096
)

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength int  `json:"max_length"`
	MinLength int  `json:"min_length"`
	DoSample  bool `json:"do_sample"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfError struct {
	Error string `json:"error"`
}

// HuggingFaceSummarizer calls the Hugging Face Inference API summarization
// task, which accepts the length bounds natively.
type HuggingFaceSummarizer struct {
	client   *http.Client
	endpoint string
	token    string
	model    string
}

// NewHuggingFaceSummarizer builds a summarizer for model served under baseURL.
// An empty token sends anonymous requests.
func NewHuggingFaceSummarizer(
	client *http.Client,
	baseURL string,
	token string,
	model string,
) (*HuggingFaceSummarizer, error) {
	if client == nil {
		client = &http.Client{}
	}

	model = strings.TrimSpace(model)
	if model == "" {
		model = HuggingFaceDefaultModel
	}

	endpoint, err := url.JoinPath(strings.TrimSpace(baseURL), "models", model)
	if err != nil {
		return nil, fmt.Errorf("build endpoint: %w", err)
	}

	return &HuggingFaceSummarizer{
		client:   client,
		endpoint: endpoint,
		token:    strings.TrimSpace(token),
		model:    model,
	}, nil
}

func (s *HuggingFaceSummarizer) Model() string { return s.model }

func (s *HuggingFaceSummarizer) Summarize(ctx context.Context, req Request) ([]Result, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyInput
	}

	body, err := json.Marshal(hfRequest{
		Inputs: req.Text,
		Parameters: hfParameters{
			MaxLength: req.MaxLength,
			MinLength: req.MinLength,
			DoSample:  req.DoSample,
		},
		Options: hfOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if s.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeHFError(resp)
	}

	var results []Result
	if err = json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return results, nil
}

// Close drops idle keep-alive connections held for the endpoint.
func (s *HuggingFaceSummarizer) Close() error {
	s.client.CloseIdleConnections()

	return nil
}

func decodeHFError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))

	message := strings.TrimSpace(string(raw))

	var apiErr hfError
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Error != "" {
		message = apiErr.Error
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &APIError{
		Provider:   HuggingFaceProvider,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
