package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FieldID absorbs the API's habit of serialising identifiers as either JSON
// numbers or strings. It always marshals back as a string.
type FieldID string

// UnmarshalJSON accepts "4", 4, and 4.3 style tokens.
func (id *FieldID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("schema: field id: %w", err)
		}
		*id = FieldID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("schema: field id: %w", err)
	}
	*id = FieldID(n.String())
	return nil
}

// MarshalJSON emits the id as a string token.
func (id FieldID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

func (id FieldID) String() string { return string(id) }

// Root returns the field-id portion before any sub-input suffix, so "4.3"
// roots at "4".
func (id FieldID) Root() string {
	s := string(id)
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return s[:dot]
	}
	return s
}

// SubKey returns the sub-input suffix relative to the owning field, stripping
// a "<fieldID>." prefix when present. Plain suffixes pass through verbatim.
func (id FieldID) SubKey(field FieldID) string {
	s := string(id)
	if prefix := string(field) + "."; strings.HasPrefix(s, prefix) {
		return s[len(prefix):]
	}
	return s
}

// FlexBool absorbs true/false, "0"/"1", "true"/"false", and 0/1 tokens. The
// forms API mixes all of them across endpoints.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*b = false
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("schema: bool: %w", err)
		}
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "", "0", "false", "no":
			*b = false
		default:
			*b = true
		}
		return nil
	}
	if v, err := strconv.ParseBool(string(trimmed)); err == nil {
		*b = FlexBool(v)
		return nil
	}
	n, err := strconv.ParseFloat(string(trimmed), 64)
	if err != nil {
		return fmt.Errorf("schema: bool: unexpected token %s", trimmed)
	}
	*b = n != 0
	return nil
}

func (b FlexBool) Bool() bool { return bool(b) }

// Messages is a validation-message map keyed by field id. The API nests
// composite-field messages one level deep ({"4": {"4.3": "..."}}); decoding
// flattens those to dotted keys and stringifies scalar values.
type Messages map[string]string

func (m *Messages) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = nil
		return nil
	}
	// Empty-object and empty-array bodies both appear in the wild.
	if bytes.Equal(trimmed, []byte("[]")) {
		*m = Messages{}
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return fmt.Errorf("schema: validation messages: %w", err)
	}
	out := make(Messages, len(raw))
	for key, value := range raw {
		flattenMessage(out, key, value)
	}
	*m = out
	return nil
}

func flattenMessage(out Messages, key string, value any) {
	switch v := value.(type) {
	case string:
		out[key] = v
	case map[string]any:
		for sub, nested := range v {
			nestedKey := sub
			if !strings.HasPrefix(sub, key) {
				nestedKey = key + "." + sub
			}
			flattenMessage(out, nestedKey, nested)
		}
	case nil:
		// skip
	default:
		out[key] = fmt.Sprint(v)
	}
}
