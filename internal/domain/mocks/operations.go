package mocks

import (
	"context"
	"sync/atomic"

	"github.com/ersonp/mdchat/internal/domain/entities"
)

// SchemaEvaluator is a mock implementation of ports.SchemaEvaluator.
type SchemaEvaluator struct {
	Result      *entities.EvaluationResult
	EvaluateErr error
	// Wait, when set, blocks Evaluate until it is closed.
	Wait <-chan struct{}

	LastRequest entities.EvaluationRequest
	callCount   atomic.Int32
}

// Evaluate returns the configured result or error.
func (m *SchemaEvaluator) Evaluate(ctx context.Context, req entities.EvaluationRequest) (*entities.EvaluationResult, error) {
	m.callCount.Add(1)
	m.LastRequest = req
	if m.Wait != nil {
		<-m.Wait
	}
	if m.EvaluateErr != nil {
		return nil, m.EvaluateErr
	}
	return m.Result, nil
}

// CallCount returns the number of Evaluate calls.
func (m *SchemaEvaluator) CallCount() int {
	return int(m.callCount.Load())
}

// StructuredExtractor is a mock implementation of ports.StructuredExtractor.
type StructuredExtractor struct {
	Result     any
	ExtractErr error

	LastRequest entities.ExtractionRequest
	callCount   atomic.Int32
}

// Extract returns the configured result or error.
func (m *StructuredExtractor) Extract(ctx context.Context, req entities.ExtractionRequest) (any, error) {
	m.callCount.Add(1)
	m.LastRequest = req
	if m.ExtractErr != nil {
		return nil, m.ExtractErr
	}
	return m.Result, nil
}

// CallCount returns the number of Extract calls.
func (m *StructuredExtractor) CallCount() int {
	return int(m.callCount.Load())
}

// GraphBuilder is a mock implementation of ports.GraphBuilder.
type GraphBuilder struct {
	Graph    *entities.KnowledgeGraph
	BuildErr error

	LastRequest entities.GraphRequest
	callCount   atomic.Int32
}

// Build returns the configured graph or error.
func (m *GraphBuilder) Build(ctx context.Context, req entities.GraphRequest) (*entities.KnowledgeGraph, error) {
	m.callCount.Add(1)
	m.LastRequest = req
	if m.BuildErr != nil {
		return nil, m.BuildErr
	}
	return m.Graph, nil
}

// CallCount returns the number of Build calls.
func (m *GraphBuilder) CallCount() int {
	return int(m.callCount.Load())
}
