package parsers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser reads schema documents written as YAML and converts them to JSON.
type YAMLParser struct{}

// Parse decodes the YAML document and re-encodes it as JSON.
func (p *YAMLParser) Parse(r io.Reader) ([]byte, error) {
	var doc any

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parsing YAML: document is empty")
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting YAML to JSON: %w", err)
	}

	return data, nil
}
