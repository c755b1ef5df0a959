package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai/jsonschema"

	"github.com/ersonp/mdchat/internal/domain/entities"
	"github.com/ersonp/mdchat/internal/domain/ports"
)

// KnowledgeGraphBuilder extracts subject-predicate-object triplets.
type KnowledgeGraphBuilder struct {
	llm    ports.LLMClient
	schema *jsonschema.Definition
}

// NewKnowledgeGraphBuilder creates a new graph builder. The response schema
// is derived from entities.KnowledgeGraph once, here.
func NewKnowledgeGraphBuilder(llm ports.LLMClient) (*KnowledgeGraphBuilder, error) {
	def, err := jsonschema.GenerateSchemaForType(entities.KnowledgeGraph{})
	if err != nil {
		return nil, fmt.Errorf("generating knowledge graph schema: %w", err)
	}

	return &KnowledgeGraphBuilder{
		llm:    llm,
		schema: def,
	}, nil
}

// Build asks the LLM for a knowledge graph of the prompt.
func (b *KnowledgeGraphBuilder) Build(ctx context.Context, req entities.GraphRequest) (*entities.KnowledgeGraph, error) {
	content, err := b.llm.Complete(ctx, ports.CompletionRequest{
		APIKey:   req.APIKey,
		Messages: userMessages(req.PrePrompt, KnowledgeGraphPrompt, req.Prompt),
		Schema: &ports.ResponseSchema{
			Name:   ResponseSchemaName,
			Schema: b.schema,
			Strict: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("building knowledge graph: %w", err)
	}

	var graph entities.KnowledgeGraph
	if err := json.Unmarshal([]byte(content), &graph); err != nil {
		return nil, fmt.Errorf("parsing knowledge graph JSON: %w (response: %s)", err, content)
	}

	if graph.Triplets == nil {
		graph.Triplets = []entities.Triplet{}
	}

	return &graph, nil
}
