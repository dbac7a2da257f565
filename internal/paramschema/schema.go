// Package paramschema validates a plugin's JSON-shaped parameter bag
// against a JSON Schema, following the spec's requirement (§4.3, §9) that
// every plugin document and validate its parameter schema on construction.
package paramschema

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Schema wraps a resolved *jsonschema.Schema for repeated validation against
// plugin parameter bags.
type Schema struct {
	raw      *jsonschema.Schema
	resolved *jsonschema.Resolved
}

// New resolves a jsonschema.Schema literal once, so every subsequent
// Validate call reuses the resolved form instead of re-resolving it.
func New(s *jsonschema.Schema) (*Schema, error) {
	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("resolving parameter schema: %w", err)
	}
	return &Schema{raw: s, resolved: resolved}, nil
}

// MustNew is New but panics on error; used by NewDefaultRegistry for the
// literal schemas it builds for each plugin, where a malformed literal
// schema is a programmer error caught when the registry is built.
func MustNew(s *jsonschema.Schema) *Schema {
	sch, err := New(s)
	if err != nil {
		panic(err)
	}
	return sch
}

// Validate checks params (a JSON-object-shaped map, as decoded from the
// plugin directive in the configuration file) against the schema.
func (s *Schema) Validate(params map[string]any) error {
	if s == nil {
		return nil
	}
	if params == nil {
		params = map[string]any{}
	}
	// Round-trip through encoding/json so map[string]any values (which may
	// contain Go-native types like int vs float64, or nested
	// map[string]any) are normalized the same way jsonschema-go expects
	// decoded JSON to look.
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("marshaling parameters: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling parameters: %w", err)
	}
	return s.resolved.Validate(v)
}
