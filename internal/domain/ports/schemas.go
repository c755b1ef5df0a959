package ports

import (
	"context"
	"errors"
)

// SchemaSource resolves data-model names to serialized JSON Schemas.
type SchemaSource interface {
	// Models lists the data models the source can resolve, sorted by name.
	Models(ctx context.Context) ([]string, error)

	// Schema returns the JSON Schema for the named model.
	Schema(ctx context.Context, model string) (string, error)
}

// ErrModelNotFound is returned when a SchemaSource has no such model.
var ErrModelNotFound = errors.New("model not found")
