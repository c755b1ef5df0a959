// Package openai provides an LLMClient implementation using OpenAI.
package openai

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ersonp/mdchat/internal/domain/ports"
	"github.com/ersonp/mdchat/internal/infrastructure/config"
)

// Temperature is the sampling temperature sent with every request.
// go-openai omits a zero temperature from the payload, which lets the
// provider apply its own default; the smallest non-zero float is sent instead.
const Temperature = math.SmallestNonzeroFloat32

// ErrMissingAPIKey is returned when a call has no API key.
var ErrMissingAPIKey = errors.New("OpenAI API key is required")

// Client implements the LLMClient interface using OpenAI.
// A fresh SDK client is built for every call so each request can carry its
// own API key.
type Client struct {
	model   string
	baseURL string
}

// NewClient creates a new OpenAI LLM client.
func NewClient(cfg config.LLMConfig) *Client {
	model := config.DefaultModel
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		model:   model,
		baseURL: cfg.BaseURL,
	}
}

// Model returns the model used for every call.
func (c *Client) Model() string {
	return c.model
}

// Complete issues a single non-streaming chat completion.
func (c *Client) Complete(ctx context.Context, req ports.CompletionRequest) (string, error) {
	if req.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	resp, err := c.newClient(req.APIKey).CreateChatCompletion(ctx, c.chatRequest(req))
	if err != nil {
		return "", fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	content := resp.Choices[0].Message.Content
	if req.Schema != nil {
		content = cleanJSONResponse(content)
	}

	return content, nil
}

func (c *Client) newClient(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if c.baseURL != "" {
		cfg.BaseURL = c.baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

// chatRequest maps a port request onto the SDK request.
func (c *Client) chatRequest(req ports.CompletionRequest) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	ccr := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: Temperature,
	}

	if req.Schema != nil {
		ccr.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   req.Schema.Name,
				Schema: req.Schema.Schema,
				Strict: req.Schema.Strict,
			},
		}
	}

	return ccr
}

// cleanJSONResponse removes markdown code blocks if present.
// OpenAI-compatible local servers sometimes fence structured replies.
func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
	}

	return strings.TrimSpace(content)
}
