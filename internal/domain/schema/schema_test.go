package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType string
		wantErr  bool
	}{
		{
			name:     "string schema",
			input:    `{"type":"string"}`,
			wantType: "string",
		},
		{
			name:     "object schema",
			input:    `{"type":"object","properties":{"name":{"type":"string"}},"required":["name"]}`,
			wantType: "object",
		},
		{
			name:    "malformed JSON",
			input:   `{"type":`,
			wantErr: true,
		},
		{
			name:    "plain text",
			input:   "not a schema",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, s.Type)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("")
	assert.ErrorIs(t, err, ErrEmptySchema)
}

func TestWrapItems(t *testing.T) {
	item, err := Parse(`{"type":"string"}`)
	require.NoError(t, err)

	env := WrapItems(item)

	assert.Equal(t, "object", env.Type)
	assert.Equal(t, []string{"items"}, env.Required)
	require.Contains(t, env.Properties, ItemsProperty)
	assert.Equal(t, "array", env.Properties[ItemsProperty].Type)
	assert.Same(t, item, env.Properties[ItemsProperty].Items)
	require.NotNil(t, env.AdditionalProperties)
	assert.NotNil(t, env.AdditionalProperties.Not)
}

func TestWrapItems_MarshalsEnvelope(t *testing.T) {
	item, err := Parse(`{"type":"string"}`)
	require.NoError(t, err)

	data, err := json.Marshal(WrapItems(item))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "object",
		"properties": {"items": {"type": "array", "items": {"type": "string"}}},
		"required": ["items"],
		"additionalProperties": false
	}`, string(data))
}

func TestWrapItems_PreservesNestedSchema(t *testing.T) {
	raw := `{"type":"object","properties":{"title":{"type":"string"},"year":{"type":"integer"}},"required":["title","year"],"additionalProperties":false}`
	item, err := Parse(raw)
	require.NoError(t, err)

	data, err := json.Marshal(WrapItems(item).Properties[ItemsProperty].Items)
	require.NoError(t, err)

	assert.JSONEq(t, raw, string(data))
}
