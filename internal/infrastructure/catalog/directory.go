// Package catalog provides a SchemaSource backed by a directory of data-model files.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ersonp/mdchat/internal/domain/ports"
	"github.com/ersonp/mdchat/internal/infrastructure/parsers"
)

// Directory resolves a model name to <dir>/<name>.{json,yaml,yml}.
// The file's base name without extension is the model name.
type Directory struct {
	dir string
}

// NewDirectory creates a catalog rooted at dir.
func NewDirectory(dir string) *Directory {
	return &Directory{dir: dir}
}

// Models lists the model names found in the directory, sorted.
func (d *Directory) Models(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return nil, fmt.Errorf("reading schema directory: %w", err)
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || parsers.ForFile(entry.Name()) == nil {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

// Schema reads and converts the named model's schema to JSON.
func (d *Directory) Schema(ctx context.Context, model string) (string, error) {
	if model == "" || strings.ContainsAny(model, `/\`) || model == "." || model == ".." {
		return "", fmt.Errorf("invalid model name %q", model)
	}

	for _, ext := range parsers.Extensions {
		path := filepath.Join(d.dir, model+ext)

		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("opening schema file: %w", err)
		}

		data, err := parsers.ForFile(path).Parse(f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("reading schema %s: %w", filepath.Base(path), err)
		}

		return string(data), nil
	}

	return "", fmt.Errorf("%w: %s", ports.ErrModelNotFound, model)
}
