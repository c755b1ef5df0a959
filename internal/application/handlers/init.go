// Package handlers contains application use case handlers.
package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ersonp/mdchat/internal/infrastructure/config"
)

// ExampleModel is the data model written by init so the catalog is not empty.
const ExampleModel = "book"

const exampleSchema = `type: object
properties:
  title:
    type: string
  author:
    type: string
  year:
    type: integer
required: [title, author, year]
additionalProperties: false
`

// InitHandler handles workspace initialization.
type InitHandler struct{}

// NewInitHandler creates a new init handler.
func NewInitHandler() *InitHandler {
	return &InitHandler{}
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath  string
	SchemasDir  string
	ExampleFile string
}

// Handle writes the default config and seeds the schema catalog.
func (h *InitHandler) Handle(ctx context.Context, basePath string) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("mdchat already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := os.MkdirAll(cfg.Schemas.Dir, 0755); err != nil {
		return nil, fmt.Errorf("creating schemas directory: %w", err)
	}

	example := filepath.Join(cfg.Schemas.Dir, ExampleModel+".yaml")
	if _, err := os.Stat(example); os.IsNotExist(err) {
		if err := os.WriteFile(example, []byte(exampleSchema), 0644); err != nil {
			return nil, fmt.Errorf("writing example schema: %w", err)
		}
	}

	return &InitResult{
		ConfigPath:  config.ConfigFilePath(basePath),
		SchemasDir:  cfg.Schemas.Dir,
		ExampleFile: example,
	}, nil
}
