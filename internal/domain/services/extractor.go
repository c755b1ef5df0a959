package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ersonp/mdchat/internal/domain/entities"
	"github.com/ersonp/mdchat/internal/domain/ports"
	"github.com/ersonp/mdchat/internal/domain/schema"
)

// ResponseSchemaName names the schema attached to structured calls.
const ResponseSchemaName = "response"

// StructuredExtractor converts text into JSON shaped by a caller schema.
type StructuredExtractor struct {
	llm ports.LLMClient
}

// NewStructuredExtractor creates a new structured extractor.
func NewStructuredExtractor(llm ports.LLMClient) *StructuredExtractor {
	return &StructuredExtractor{llm: llm}
}

// Extract parses the request schema, optionally wraps it for multiple
// outputs, and asks the LLM for a reply constrained to it.
// The schema is parsed before any call is made.
func (x *StructuredExtractor) Extract(ctx context.Context, req entities.ExtractionRequest) (any, error) {
	root, err := schema.Parse(req.Schema)
	if err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}

	if req.MultipleOutputs {
		root = schema.WrapItems(root)
	}

	content, err := x.llm.Complete(ctx, ports.CompletionRequest{
		APIKey:   req.APIKey,
		Messages: userMessages(req.SystemPrompt, ExtractionPrePrompt, req.Text),
		Schema: &ports.ResponseSchema{
			Name:   ResponseSchemaName,
			Schema: root,
			Strict: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("extracting to schema: %w", err)
	}

	var out any
	if err := json.Unmarshal([]byte(content), &out); err != nil {
		return nil, fmt.Errorf("parsing extraction JSON: %w (response: %s)", err, content)
	}

	return out, nil
}
