// Package llm talks to an OpenAI-compatible chat completions API.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/polyglot/translator/internal/core/ports"
)

const (
	DefaultModel   = openai.GPT3Dot5Turbo
	defaultTimeout = 60 * time.Second
)

var ErrEmptyResponse = errors.New("llm: response has no choices")

// Config captures the provider settings. An empty BaseURL means api.openai.com.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client implements ports.LanguageModel.
type Client struct {
	api   *openai.Client
	model string
}

func NewClient(cfg Config) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	oc.HTTPClient = &http.Client{Timeout: timeout}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	return &Client{api: openai.NewClientWithConfig(oc), model: model}
}

// Complete sends one system+user exchange and returns the first choice's text.
func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.User},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Choices[0].Message.Content, nil
}
