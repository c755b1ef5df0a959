package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/mdchat/internal/domain/entities"
	"github.com/ersonp/mdchat/internal/domain/ports"
)

// ExtractHandler turns text into a value conforming to a data model.
type ExtractHandler struct {
	extractor ports.StructuredExtractor
	schemas   ports.SchemaSource
}

// NewExtractHandler creates a new extract handler.
func NewExtractHandler(extractor ports.StructuredExtractor, schemas ports.SchemaSource) *ExtractHandler {
	return &ExtractHandler{
		extractor: extractor,
		schemas:   schemas,
	}
}

// ExtractInput holds the inputs of one extraction.
type ExtractInput struct {
	Text         string
	Schema       SchemaRef
	APIKey       string
	SystemPrompt string
	Multiple     bool
}

// Handle resolves the schema and runs the extractor.
func (h *ExtractHandler) Handle(ctx context.Context, in ExtractInput) (any, error) {
	schemaJSON, err := ResolveSchema(ctx, h.schemas, in.Schema)
	if err != nil {
		return nil, fmt.Errorf("resolving schema: %w", err)
	}

	return h.extractor.Extract(ctx, entities.ExtractionRequest{
		Schema:          schemaJSON,
		Text:            in.Text,
		APIKey:          in.APIKey,
		MultipleOutputs: in.Multiple,
		SystemPrompt:    in.SystemPrompt,
	})
}
