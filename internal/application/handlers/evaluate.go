package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/mdchat/internal/domain/entities"
	"github.com/ersonp/mdchat/internal/domain/ports"
)

// EvaluateHandler checks whether a text fits a data model.
type EvaluateHandler struct {
	evaluator ports.SchemaEvaluator
	schemas   ports.SchemaSource
}

// NewEvaluateHandler creates a new evaluate handler.
func NewEvaluateHandler(evaluator ports.SchemaEvaluator, schemas ports.SchemaSource) *EvaluateHandler {
	return &EvaluateHandler{
		evaluator: evaluator,
		schemas:   schemas,
	}
}

// EvaluateInput holds the inputs of one evaluation.
type EvaluateInput struct {
	Text         string
	Schema       SchemaRef
	APIKey       string
	SystemPrompt string
}

// Handle resolves the schema and asks the evaluator for a verdict.
func (h *EvaluateHandler) Handle(ctx context.Context, in EvaluateInput) (*entities.EvaluationResult, error) {
	schemaJSON, err := ResolveSchema(ctx, h.schemas, in.Schema)
	if err != nil {
		return nil, fmt.Errorf("resolving schema: %w", err)
	}

	return h.evaluator.Evaluate(ctx, entities.EvaluationRequest{
		Text:         in.Text,
		Schema:       schemaJSON,
		APIKey:       in.APIKey,
		SystemPrompt: in.SystemPrompt,
	})
}
