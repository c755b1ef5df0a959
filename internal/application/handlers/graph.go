package handlers

import (
	"context"

	"github.com/ersonp/mdchat/internal/domain/entities"
	"github.com/ersonp/mdchat/internal/domain/ports"
)

// GraphHandler builds a knowledge graph from text.
type GraphHandler struct {
	builder ports.GraphBuilder
}

// NewGraphHandler creates a new graph handler.
func NewGraphHandler(builder ports.GraphBuilder) *GraphHandler {
	return &GraphHandler{builder: builder}
}

// Handle builds the graph for text. prePrompt may be empty.
func (h *GraphHandler) Handle(ctx context.Context, text, prePrompt, apiKey string) (*entities.KnowledgeGraph, error) {
	return h.builder.Build(ctx, entities.GraphRequest{
		Prompt:    text,
		PrePrompt: prePrompt,
		APIKey:    apiKey,
	})
}
