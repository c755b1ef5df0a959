package entities

// ExtractionRequest asks for text to be converted into a schema-shaped value.
type ExtractionRequest struct {
	// Schema is a serialized JSON Schema. It must parse as JSON.
	Schema string
	Text   string
	APIKey string
	// MultipleOutputs wraps Schema in an {"items": [...]} envelope.
	MultipleOutputs bool
	SystemPrompt    string
}
