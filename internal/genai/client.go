package genai

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Completer is the text-generation capability the pipeline drives:
// one prompt in, raw model text out, or a typed *ModelError.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error)
}

// Client calls an OpenAI-compatible chat completion API.
type Client struct {
	client *openai.Client
	model  string

	Stats *LLMStats
}

func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		Stats:  NewLLMStats(time.Hour),
	}
}

// Model returns the configured model name.
func (c *Client) Model() string {
	return c.model
}

// Complete sends a single-turn chat completion request and returns the
// model's raw text. Failures are classified as *ModelError.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int, temperature float32) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	start := time.Now()
	resp, err := c.client.CreateChatCompletion(ctx, req)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		merr := classifyError(err)
		if c.Stats != nil {
			c.Stats.RecordFailure(elapsed, merr.Kind)
		}
		return "", merr
	}
	if c.Stats != nil {
		c.Stats.Record(elapsed)
	}

	if len(resp.Choices) == 0 {
		return "", &ModelError{Kind: FailureRefused, Err: fmt.Errorf("empty completion response")}
	}
	choice := resp.Choices[0]
	if choice.FinishReason == openai.FinishReasonContentFilter {
		return "", &ModelError{Kind: FailureRefused, Err: fmt.Errorf("completion blocked by content filter")}
	}
	if choice.Message.Content == "" {
		return "", &ModelError{Kind: FailureRefused, Err: fmt.Errorf("completion returned no text")}
	}
	return choice.Message.Content, nil
}

// AvailabilityStatus reports whether the completion API is reachable
// and whether the configured model is served.
type AvailabilityStatus struct {
	Available      bool     `json:"available"`
	ModelAvailable bool     `json:"model_available"`
	Models         []string `json:"models,omitempty"`
	Error          string   `json:"error,omitempty"`
}

// CheckAvailability probes the API by listing models. It never returns
// an error; failures are reported in the status.
func (c *Client) CheckAvailability(ctx context.Context) AvailabilityStatus {
	list, err := c.client.ListModels(ctx)
	if err != nil {
		return AvailabilityStatus{Available: false, Error: err.Error()}
	}

	status := AvailabilityStatus{Available: true}
	for _, m := range list.Models {
		status.Models = append(status.Models, m.ID)
		if m.ID == c.model {
			status.ModelAvailable = true
		}
	}
	return status
}

// classifyError maps transport and API errors onto the failure
// taxonomy the pipeline recovers from.
func classifyError(err error) *ModelError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ModelError{Kind: FailureTimeout, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500 {
			return &ModelError{Kind: FailureUnavailable, Err: err}
		}
		return &ModelError{Kind: FailureRefused, Err: err}
	}

	// Connection refused, DNS failures and the like.
	return &ModelError{Kind: FailureUnavailable, Err: err}
}
