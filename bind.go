package good

import "github.com/mitchellh/mapstructure"

// ValidateInto validates the value and decodes the sanitized result into
// target, which must be a pointer to a struct (or to any type mapstructure
// can decode into). Validation errors are returned as usual; decode errors
// come from mapstructure.
func (s *Schema) ValidateInto(v any, target any) error {
	out, err := s.Validate(v)
	if err != nil {
		return err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result: target,
	})
	if err != nil {
		return err
	}
	return dec.Decode(out)
}
