package validators

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	good "github.com/kolypto/go-good"
	"github.com/kolypto/go-good/i18n"
)

type inValidator struct {
	name     string
	contains func(v any) bool
}

// In validates that the value is a member of the container: a slice or
// array of allowed values, or a map whose keys are the allowed values. This
// is a plain membership check; in contrast to Any, the members are not
// compiled into schemas.
func In(container any) good.Validator {
	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		var parts []string
		for i := 0; i < rv.Len(); i++ {
			parts = append(parts, good.LiteralName(rv.Index(i).Interface()))
		}
		return &inValidator{
			name: "In(" + strings.Join(parts, ",") + ")",
			contains: func(v any) bool {
				for i := 0; i < rv.Len(); i++ {
					if deepEq(v, rv.Index(i).Interface()) {
						return true
					}
				}
				return false
			},
		}
	case reflect.Map:
		var parts []string
		for _, k := range rv.MapKeys() {
			parts = append(parts, good.LiteralName(k.Interface()))
		}
		return &inValidator{
			name: "In(" + strings.Join(parts, ",") + ")",
			contains: func(v any) bool {
				for _, k := range rv.MapKeys() {
					if deepEq(v, k.Interface()) {
						return true
					}
				}
				return false
			},
		}
	}
	panic(&good.SchemaError{Message: "In() container must be a slice, array or map", Schema: container})
}

func (i *inValidator) Name() string { return i.name }

func (i *inValidator) Validate(v any) (any, error) {
	if !i.contains(v) {
		return nil, &good.Invalid{Message: i18n.T("value_not_allowed", nil), Expected: i.name, Provided: good.LiteralName(v), Validator: i}
	}
	return v, nil
}

// LengthValidator validates that a collection's length falls in a range.
// Zero-value bounds mean "no limit":
//
//	validators.Length().Min(1).Max(3)
type LengthValidator struct {
	min, max int
	hasMin   bool
	hasMax   bool
}

// Length builds a collection length validator; chain Min/Max to set bounds.
func Length() *LengthValidator { return &LengthValidator{} }

// Min sets the minimal allowed length.
func (l *LengthValidator) Min(n int) *LengthValidator { l.min, l.hasMin = n, true; return l }

// Max sets the maximal allowed length.
func (l *LengthValidator) Max(n int) *LengthValidator { l.max, l.hasMax = n, true; return l }

func (l *LengthValidator) Name() string {
	lo, hi := "", ""
	if l.hasMin {
		lo = strconv.Itoa(l.min)
	}
	if l.hasMax {
		hi = strconv.Itoa(l.max)
	}
	return fmt.Sprintf("Length(%s..%s)", lo, hi)
}

func (l *LengthValidator) Validate(v any) (any, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
	default:
		return nil, &good.Invalid{Message: i18n.T("wrong_type", nil), Expected: "Collection", Provided: good.TypeNameOf(v), Validator: l}
	}
	length := rv.Len()
	if l.hasMin && length < l.min {
		return nil, &good.Invalid{
			Message:  i18n.T("too_few", map[string]string{"min": strconv.Itoa(l.min)}),
			Expected: l.Name(), Provided: strconv.Itoa(length), Validator: l,
		}
	}
	if l.hasMax && length > l.max {
		return nil, &good.Invalid{
			Message:  i18n.T("too_many", map[string]string{"max": strconv.Itoa(l.max)}),
			Expected: l.Name(), Provided: strconv.Itoa(length), Validator: l,
		}
	}
	return v, nil
}

type defaultValidator struct {
	def    any
	strict bool
}

// Default initializes a value to def when it is not provided: nil and the
// Undefined placeholder map to def, and def itself passes. Everything else
// fails. Combined with a Required mapping key, a missing key is created
// with the default value.
func Default(def any) good.Validator { return &defaultValidator{def: def, strict: true} }

// Fallback always returns def, whatever the input. It works like Default
// but never fails; typical usage is to terminate an Any chain when nothing
// else worked.
func Fallback(def any) good.Validator { return &defaultValidator{def: def} }

func (d *defaultValidator) Name() string {
	if d.strict {
		return fmt.Sprintf("Default=%v", d.def)
	}
	return fmt.Sprintf("Fallback=%v", d.def)
}

func (d *defaultValidator) Validate(v any) (any, error) {
	if !d.strict || v == nil || v == any(good.Undefined) || deepEq(v, d.def) {
		return d.def, nil
	}
	return nil, &good.Invalid{Message: i18n.T("invalid_value", nil), Expected: d.Name(), Provided: good.LiteralName(v), Validator: d}
}

type maybeValidator struct {
	name  string
	inner *good.Schema
}

// Maybe wraps a schema to also accept nil: nil input and the Undefined
// placeholder yield nil, anything else must pass the wrapped schema.
func Maybe(schema any) good.Validator {
	inner := good.Must(schema)
	return &maybeValidator{name: "Maybe(" + inner.Name() + ")", inner: inner}
}

func (m *maybeValidator) Name() string { return m.name }

func (m *maybeValidator) Validate(v any) (any, error) {
	if v == nil || v == any(good.Undefined) {
		return nil, nil
	}
	return m.inner.Validate(v)
}

// deepEq compares values without panicking on uncomparable operands.
func deepEq(a, b any) bool { return reflect.DeepEqual(a, b) }
