package vexysvgo

import "github.com/google/jsonschema-go/jsonschema"

// Small parameter-bag accessors shared by every plugin in the catalog: a
// plugin's params map comes from JSON/YAML config decoding (ints may
// already have become float64), so these centralize the coercions.

func paramBool(params map[string]any, name string, def bool) bool {
	v, ok := params[name]
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}

func paramInt(params map[string]any, name string, def int) int {
	v, ok := params[name]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	return def
}

func paramString(params map[string]any, name, def string) string {
	v, ok := params[name]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	return s
}

func paramStrings(params map[string]any, name string) []string {
	v, ok := params[name]
	if !ok {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// Schema literal helpers, kept minimal and local to this package — every
// plugin schema below is a flat object of booleans/numbers/strings/string
// arrays, never a nested shape, so there is no need for a general-purpose
// schema builder.

func boolSchema() *jsonschema.Schema   { return &jsonschema.Schema{Type: "boolean"} }
func numberSchema() *jsonschema.Schema { return &jsonschema.Schema{Type: "number"} }
func stringSchema() *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} }
func stringArraySchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "array", Items: stringSchema()}
}

func objectSchema(props map[string]*jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: props}
}
