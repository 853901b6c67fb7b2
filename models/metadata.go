package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Metadata is an open string map. Decoding keeps numbers and booleans as
// their literal text and drops nulls and nested values, so a backend that
// sends page_number as a number still decodes.
type Metadata map[string]string

func (m Metadata) Get(key string) string {
	return m[key]
}

func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("metadata must be an object: %w", err)
	}
	if raw == nil {
		*m = nil
		return nil
	}

	metadata := make(Metadata, len(raw))
	for key, value := range raw {
		text, ok, err := scalarText(value)
		if err != nil {
			return fmt.Errorf("metadata field %q: %w", key, err)
		}
		if ok {
			metadata[key] = text
		}
	}
	*m = metadata

	return nil
}

func scalarText(value json.RawMessage) (string, bool, error) {
	value = bytes.TrimSpace(value)
	if len(value) == 0 || bytes.Equal(value, []byte("null")) {
		return "", false, nil
	}

	switch value[0] {
	case '"':
		var text string
		if err := json.Unmarshal(value, &text); err != nil {
			return "", false, err
		}
		return text, true, nil
	case '{', '[':
		return "", false, nil
	default:
		return string(value), true, nil
	}
}
