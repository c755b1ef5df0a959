// Package ports defines interfaces for external service communication.
package ports

import (
	"context"
	"encoding/json"
)

// RoleUser is the role of every message sent by the services.
const RoleUser = "user"

// Message is a single chat message.
type Message struct {
	Role    string
	Content string
}

// ResponseSchema constrains the model's reply to a JSON Schema.
type ResponseSchema struct {
	Name   string
	Schema json.Marshaler
	Strict bool
}

// CompletionRequest is one non-streaming chat completion.
type CompletionRequest struct {
	// APIKey authenticates this call only; clients are built per call.
	APIKey   string
	Messages []Message
	// Schema is optional. When set, the reply must be JSON matching it.
	Schema *ResponseSchema
}

// LLMClient defines the interface for LLM operations.
// Implementations fix the sampling temperature and choose the model from
// their own configuration.
type LLMClient interface {
	// Complete returns the content of the first completion choice.
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}
