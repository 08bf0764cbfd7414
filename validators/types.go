package validators

import (
	"fmt"
	"reflect"
	"strconv"

	good "github.com/kolypto/go-good"
	"github.com/kolypto/go-good/i18n"
)

type coerceValidator[T any] struct {
	name    string
	convert func(any) (T, error)
}

// Coerce applies convert to the input and uses the result as the sanitized
// value. Conversion errors are soft: they are reported as an invalid value
// rather than passed through.
func Coerce[T any](convert func(any) (T, error)) good.Validator {
	var zero T
	return &coerceValidator[T]{
		name:    "*" + good.TypeName(reflect.TypeOf(zero)),
		convert: convert,
	}
}

func (c *coerceValidator[T]) Name() string { return c.name }

func (c *coerceValidator[T]) Validate(v any) (any, error) {
	out, err := c.convert(v)
	if err != nil {
		return nil, &good.Invalid{Message: i18n.T("invalid_value", nil), Expected: c.name, Provided: good.LiteralName(v), Validator: c}
	}
	return out, nil
}

// CoerceInt casts numbers and numeric strings to int.
func CoerceInt() good.Validator {
	return Coerce(func(v any) (int, error) {
		switch v := v.(type) {
		case int:
			return v, nil
		case int64:
			return int(v), nil
		case float64:
			return int(v), nil
		case string:
			return strconv.Atoi(v)
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return int(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return int(rv.Uint()), nil
		case reflect.Float32, reflect.Float64:
			return int(rv.Float()), nil
		}
		return 0, fmt.Errorf("cannot convert %T to int", v)
	})
}

// CoerceFloat casts numbers and numeric strings to float64.
func CoerceFloat() good.Validator {
	return Coerce(func(v any) (float64, error) {
		switch v := v.(type) {
		case float64:
			return v, nil
		case string:
			return strconv.ParseFloat(v, 64)
		}
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return float64(rv.Int()), nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return float64(rv.Uint()), nil
		case reflect.Float32:
			return rv.Float(), nil
		}
		return 0, fmt.Errorf("cannot convert %T to float64", v)
	})
}

// CoerceString renders any value as a string.
func CoerceString() good.Validator {
	return Coerce(func(v any) (string, error) {
		if v == nil {
			return "", fmt.Errorf("cannot convert nil to string")
		}
		return fmt.Sprint(v), nil
	})
}
