// Package entities contains core domain data structures.
package entities

// EvaluationRequest asks whether a text fits a data-model schema.
// Schema is treated as opaque text by the evaluator.
type EvaluationRequest struct {
	Text         string
	Schema       string
	APIKey       string
	SystemPrompt string
}

// EvaluationResult is the verdict parsed from the model's reply.
// Fits is derived from the reply's tags, never declared by the model directly.
type EvaluationResult struct {
	Fits   bool   `json:"fits"`
	Reason string `json:"reason"`
}
