package good

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/kolypto/go-good/i18n"
)

// groupValidator is a named whole-mapping validator used with Entire.
type groupValidator struct {
	name string
	fn   func(v any) (any, error)
}

func (g *groupValidator) Name() string                { return g.name }
func (g *groupValidator) Validate(v any) (any, error) { return g.fn(v) }
func (g *groupValidator) String() string              { return g.name }

var _ Validator = (*groupValidator)(nil)

func joinLiterals(keys []any) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = literalName(k)
	}
	return strings.Join(parts, ",")
}

// mapHas reports whether the mapping contains the key, comparing with eq so
// map[any]any and typed maps behave alike.
func mapHas(rv reflect.Value, key any) bool {
	iter := rv.MapRange()
	for iter.Next() {
		if eq(iter.Key().Interface(), key) {
			return true
		}
	}
	return false
}

func requireMapping(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if v == nil || rv.Kind() != reflect.Map {
		return reflect.Value{}, &Invalid{
			Message:  i18n.T("wrong_value_type", nil),
			Expected: "Dictionary",
			Provided: valueTypeName(v),
		}
	}
	return rv, nil
}

// Inclusive is a group validator for use with Entire: the named keys are
// optional, but either all of them are present or none is. Per-key policies
// still apply, so the keys themselves should be marked Optional in the
// mapping.
func Inclusive(keys ...any) Validator {
	name := fmt.Sprintf("Inclusive(%s)", joinLiterals(keys))
	return &groupValidator{name: name, fn: func(v any) (any, error) {
		rv, err := requireMapping(v)
		if err != nil {
			return nil, err
		}
		var present, missing []any
		for _, k := range keys {
			if mapHas(rv, k) {
				present = append(present, k)
			} else {
				missing = append(missing, k)
			}
		}
		if len(present) > 0 && len(missing) > 0 {
			var errs []*Invalid
			for _, k := range missing {
				errs = append(errs, &Invalid{
					Message:  i18n.T("required_missing", nil),
					Expected: literalName(k),
					Provided: i18n.T("none", nil),
					Path:     []any{k},
				})
			}
			return nil, invalidOrMultiple(errs)
		}
		return v, nil
	}}
}

// Exclusive is a group validator for use with Entire: at most one of the
// named keys may be present in the mapping.
func Exclusive(keys ...any) Validator {
	name := fmt.Sprintf("Exclusive(%s)", joinLiterals(keys))
	return &groupValidator{name: name, fn: func(v any) (any, error) {
		rv, err := requireMapping(v)
		if err != nil {
			return nil, err
		}
		var present []any
		for _, k := range keys {
			if mapHas(rv, k) {
				present = append(present, k)
			}
		}
		if len(present) > 1 {
			var errs []*Invalid
			for _, k := range present {
				errs = append(errs, &Invalid{
					Message:  i18n.T("exclusive_conflict", nil),
					Expected: name,
					Provided: literalName(k),
					Path:     []any{k},
				})
			}
			return nil, invalidOrMultiple(errs)
		}
		return v, nil
	}}
}
