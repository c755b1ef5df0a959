package parsers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// JSONParser reads schema documents written as JSON.
type JSONParser struct{}

// Parse validates the JSON and returns it compacted. The input must hold
// exactly one document.
func (p *JSONParser) Parse(r io.Reader) ([]byte, error) {
	var raw json.RawMessage

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if err := decoder.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return nil, errors.New("parsing JSON: unexpected content after document")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, fmt.Errorf("compacting JSON: %w", err)
	}

	return buf.Bytes(), nil
}
