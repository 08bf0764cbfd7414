package good

import (
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// ValidateJSON decodes a JSON document and validates the result. Numbers
// decode as float64 and objects as map[string]any, so schemas intended for
// JSON input should use Float and string keys.
//
// A malformed document fails with an *Invalid carrying the decoder's
// message; validation failures are reported as usual.
func (s *Schema) ValidateJSON(b []byte) (any, error) {
	var v any
	if err := gojson.Unmarshal(b, &v); err != nil {
		return nil, &Invalid{Message: err.Error(), Expected: "JSON", Provided: literalName(string(b))}
	}
	return s.Validate(v)
}

// ValidateYAML decodes a YAML document and validates the result. Mappings
// decode as map[string]any and integers as int.
func (s *Schema) ValidateYAML(b []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return nil, &Invalid{Message: err.Error(), Expected: "YAML", Provided: literalName(string(b))}
	}
	return s.Validate(v)
}
