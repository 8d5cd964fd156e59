package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseForm decodes a form document from JSON or YAML. YAML documents are
// normalised through an any-typed round trip so the lenient JSON decoders
// still apply.
func ParseForm(data []byte) (*Form, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("schema: empty form document")
	}

	if trimmed[0] != '{' {
		var doc any
		if err := yaml.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("schema: parse yaml form: %w", err)
		}
		normalised, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("schema: normalise yaml form: %w", err)
		}
		trimmed = normalised
	}

	var form Form
	if err := json.Unmarshal(trimmed, &form); err != nil {
		return nil, fmt.Errorf("schema: parse form: %w", err)
	}
	if len(form.Fields) == 0 {
		return nil, fmt.Errorf("schema: form %s declares no fields", form.ID)
	}
	return &form, nil
}

// LoadFormFile reads and parses a form document from disk.
func LoadFormFile(path string) (*Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read form file: %w", err)
	}
	return ParseForm(data)
}
