package ports

import (
	"context"

	"github.com/ersonp/mdchat/internal/domain/entities"
)

// SchemaEvaluator judges whether a text fits a schema.
type SchemaEvaluator interface {
	Evaluate(ctx context.Context, req entities.EvaluationRequest) (*entities.EvaluationResult, error)
}

// StructuredExtractor converts text into a value shaped by a schema.
type StructuredExtractor interface {
	Extract(ctx context.Context, req entities.ExtractionRequest) (any, error)
}

// GraphBuilder extracts a knowledge graph from text.
type GraphBuilder interface {
	Build(ctx context.Context, req entities.GraphRequest) (*entities.KnowledgeGraph, error)
}
