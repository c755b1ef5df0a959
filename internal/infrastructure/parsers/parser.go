// Package parsers decodes data-model schema files into JSON Schema text.
package parsers

import (
	"io"
	"path/filepath"
	"strings"
)

// Parser defines the interface for reading a schema document.
// Parse returns the schema as compact JSON.
type Parser interface {
	Parse(r io.Reader) ([]byte, error)
}

// Extensions lists the file extensions ForFile understands.
var Extensions = []string{".json", ".yaml", ".yml"}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}
