package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ersonp/mdchat/internal/domain/entities"
	"github.com/ersonp/mdchat/internal/domain/ports"
)

var (
	// reFitTag matches <FIT>, tolerating case and inner whitespace.
	reFitTag = regexp.MustCompile(`(?i)<\s*FIT\s*>`)
	// reVerdictTag matches either verdict tag.
	reVerdictTag = regexp.MustCompile(`(?i)<\s*(?:FIT|UNFIT)\s*>`)
)

// SchemaEvaluator asks the LLM whether a text fits a schema.
type SchemaEvaluator struct {
	llm ports.LLMClient
}

// NewSchemaEvaluator creates a new schema evaluator.
func NewSchemaEvaluator(llm ports.LLMClient) *SchemaEvaluator {
	return &SchemaEvaluator{llm: llm}
}

// Evaluate sends the text and schema to the LLM and parses its verdict.
func (e *SchemaEvaluator) Evaluate(ctx context.Context, req entities.EvaluationRequest) (*entities.EvaluationResult, error) {
	messages := userMessages(
		req.SystemPrompt,
		EvaluationPrompt,
		"Schema: \n"+req.Schema,
		"Text: \n"+req.Text,
	)

	content, err := e.llm.Complete(ctx, ports.CompletionRequest{
		APIKey:   req.APIKey,
		Messages: messages,
	})
	if err != nil {
		return nil, fmt.Errorf("evaluating schema fit: %w", err)
	}

	result := ParseVerdict(content)
	return &result, nil
}

// ParseVerdict reads the fit/unfit verdict out of a model reply.
// Backticks are dropped first, so a tag wrapped in code spans still counts.
// A reply without tags is an unfit verdict whose reason is the whole reply.
func ParseVerdict(message string) entities.EvaluationResult {
	message = strings.ReplaceAll(message, "`", "")

	return entities.EvaluationResult{
		Fits:   reFitTag.MatchString(message),
		Reason: strings.TrimSpace(reVerdictTag.ReplaceAllString(message, "")),
	}
}
