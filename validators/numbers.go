package validators

import (
	"fmt"
	"reflect"
	"strconv"

	good "github.com/kolypto/go-good"
	"github.com/kolypto/go-good/i18n"
)

// RangeValidator validates that a number falls in a range; chain Min/Max to
// set the bounds.
type RangeValidator struct {
	min, max float64
	hasMin   bool
	hasMax   bool
	// clamp makes out-of-range values snap to the violated bound instead
	// of failing.
	clamp bool
}

// Range builds a numeric range validator. Out-of-range values fail.
func Range() *RangeValidator { return &RangeValidator{} }

// Clamp builds a numeric range validator that clamps out-of-range values to
// the nearest bound instead of failing.
func Clamp() *RangeValidator { return &RangeValidator{clamp: true} }

// Min sets the lower bound (inclusive).
func (r *RangeValidator) Min(n float64) *RangeValidator { r.min, r.hasMin = n, true; return r }

// Max sets the upper bound (inclusive).
func (r *RangeValidator) Max(n float64) *RangeValidator { r.max, r.hasMax = n, true; return r }

func (r *RangeValidator) Name() string {
	lo, hi := "", ""
	if r.hasMin {
		lo = strconv.FormatFloat(r.min, 'g', -1, 64)
	}
	if r.hasMax {
		hi = strconv.FormatFloat(r.max, 'g', -1, 64)
	}
	kind := "Range"
	if r.clamp {
		kind = "Clamp"
	}
	return fmt.Sprintf("%s(%s..%s)", kind, lo, hi)
}

func (r *RangeValidator) Validate(v any) (any, error) {
	f, ok := toFloat(v)
	if !ok {
		return nil, &good.Invalid{Message: i18n.T("wrong_type", nil), Expected: "Number", Provided: good.TypeNameOf(v), Validator: r}
	}
	switch {
	case r.hasMin && f < r.min:
		if r.clamp {
			return numberAs(r.min, v), nil
		}
	case r.hasMax && f > r.max:
		if r.clamp {
			return numberAs(r.max, v), nil
		}
	default:
		return v, nil
	}
	return nil, &good.Invalid{Message: i18n.T("out_of_range", nil), Expected: r.Name(), Provided: good.LiteralName(v), Validator: r}
}

func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// numberAs converts a bound back to the input's own numeric type, so
// clamping an int keeps it an int.
func numberAs(f float64, like any) any {
	return reflect.ValueOf(f).Convert(reflect.TypeOf(like)).Interface()
}
