package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/mdchat/internal/domain/ports"
)

// ModelsHandler lists the data models in the catalog.
type ModelsHandler struct {
	schemas ports.SchemaSource
}

// NewModelsHandler creates a new models handler.
func NewModelsHandler(schemas ports.SchemaSource) *ModelsHandler {
	return &ModelsHandler{schemas: schemas}
}

// Handle returns the model names.
func (h *ModelsHandler) Handle(ctx context.Context) ([]string, error) {
	models, err := h.schemas.Models(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}
	return models, nil
}
