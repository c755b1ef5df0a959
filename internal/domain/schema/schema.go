// Package schema builds the JSON Schemas sent with structured LLM calls.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// ItemsProperty is the envelope property that holds multiple outputs.
const ItemsProperty = "items"

// ErrEmptySchema is returned when a schema string has no content.
var ErrEmptySchema = errors.New("schema is empty")

// Parse decodes a serialized JSON Schema into its typed form.
func Parse(raw string) (*jsonschema.Schema, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, ErrEmptySchema
	}

	var s jsonschema.Schema
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decoding JSON schema: %w", err)
	}

	return &s, nil
}

// WrapItems returns an object schema whose only, required property is an
// array of item. Additional properties are rejected.
func WrapItems(item *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			ItemsProperty: {
				Type:  "array",
				Items: item,
			},
		},
		Required:             []string{ItemsProperty},
		AdditionalProperties: False(),
	}
}

// False returns the schema that matches nothing. It marshals as `false`.
func False() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}
