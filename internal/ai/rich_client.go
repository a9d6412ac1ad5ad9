package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

// RichClientConfig configures the higher-level chat-completion client.
type RichClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// RichClient is the primary generation path: a chat-completion call against
// the provider's OpenAI-compatible endpoint. It consumes the same assembled
// prompt string as the gateway; the two paths differ only in transport.
type RichClient struct {
	client *openai.Client
	model  string
}

func NewRichClient(cfg RichClientConfig) *RichClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultGatewayTimeout
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &RichClient{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
	}
}

// Generate sends the prompt as a single user message and returns the reply.
func (c *RichClient) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", fmt.Errorf("prompt cannot be empty")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.7,
		MaxTokens:   1024,
		TopP:        0.95,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("received empty response from API")
	}

	return resp.Choices[0].Message.Content, nil
}
