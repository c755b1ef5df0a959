package mocks

import (
	"context"
	"sort"

	"github.com/ersonp/mdchat/internal/domain/ports"
)

// SchemaSource is a mock implementation of ports.SchemaSource backed by a map.
type SchemaSource struct {
	Schemas   map[string]string
	SchemaErr error
}

// Models returns the map keys in sorted order.
func (m *SchemaSource) Models(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.Schemas))
	for name := range m.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Schema returns the configured schema or error.
func (m *SchemaSource) Schema(ctx context.Context, model string) (string, error) {
	if m.SchemaErr != nil {
		return "", m.SchemaErr
	}
	s, ok := m.Schemas[model]
	if !ok {
		return "", ports.ErrModelNotFound
	}
	return s, nil
}
