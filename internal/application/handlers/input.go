package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ersonp/mdchat/internal/domain/ports"
	"github.com/ersonp/mdchat/internal/infrastructure/parsers"
)

// StdinPath is the path argument that reads text from standard input.
const StdinPath = "-"

// ReadText returns the contents of the file at path, or of stdin when path
// is StdinPath.
func ReadText(path string, stdin io.Reader) (string, error) {
	if path == StdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return "", fmt.Errorf("accessing file: %w", err)
	}

	if info.IsDir() {
		return "", fmt.Errorf("path is a directory, not a file: %s", absPath)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}

	return string(data), nil
}

// SchemaRef selects a schema either by catalog model name or by file path.
// File wins when both are set.
type SchemaRef struct {
	Model string
	File  string
}

// ResolveSchema returns the JSON Schema text a SchemaRef points at.
func ResolveSchema(ctx context.Context, source ports.SchemaSource, ref SchemaRef) (string, error) {
	if ref.File != "" {
		return readSchemaFile(ref.File)
	}
	if ref.Model == "" {
		return "", fmt.Errorf("either a model or a schema file is required")
	}
	if source == nil {
		return "", fmt.Errorf("no schema catalog configured")
	}
	return source.Schema(ctx, ref.Model)
}

func readSchemaFile(path string) (string, error) {
	parser := parsers.ForFile(path)
	if parser == nil {
		return "", fmt.Errorf("unsupported schema format: %s (supported: .json, .yaml, .yml)", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening schema file: %w", err)
	}
	defer f.Close()

	data, err := parser.Parse(f)
	if err != nil {
		return "", fmt.Errorf("reading schema file: %w", err)
	}
	return string(data), nil
}
