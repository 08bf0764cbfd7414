package validators

import (
	"reflect"

	good "github.com/kolypto/go-good"
	"github.com/kolypto/go-good/i18n"
)

type checkValidator struct {
	pred     func(any) bool
	message  string
	expected string
}

// Check uses the provided boolean function as a validator: when it reports
// false, message is raised with the given expected string.
func Check(pred func(any) bool, message, expected string) good.Validator {
	return &checkValidator{pred: pred, message: message, expected: expected}
}

func (c *checkValidator) Name() string { return c.expected }

func (c *checkValidator) Validate(v any) (any, error) {
	if c.pred(v) {
		return v, nil
	}
	return nil, &good.Invalid{Message: c.message, Expected: c.expected, Provided: good.LiteralName(v), Validator: c}
}

// truthy reports whether a value is non-empty: false for nil, false, zero
// numbers, empty strings and empty collections.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Interface:
		return !rv.IsNil()
	}
	return !rv.IsZero()
}

type truthyValidator struct{ want bool }

// Truthy asserts that the value is non-empty and fails on nil, false, zero
// numbers and empty collections.
func Truthy() good.Validator { return &truthyValidator{want: true} }

// Falsy is supplementary to Truthy: the value must be empty.
func Falsy() good.Validator { return &truthyValidator{want: false} }

func (t *truthyValidator) Name() string {
	if t.want {
		return "Truthy"
	}
	return "Falsy"
}

func (t *truthyValidator) Validate(v any) (any, error) {
	if truthy(v) == t.want {
		return v, nil
	}
	code := "empty_value"
	if !t.want {
		code = "non_empty_value"
	}
	return nil, &good.Invalid{Message: i18n.T(code, nil), Expected: t.Name(), Provided: good.TypeNameOf(v), Validator: t}
}
