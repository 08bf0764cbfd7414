package validators

import (
	"errors"
	"strings"

	good "github.com/kolypto/go-good"
	"github.com/kolypto/go-good/i18n"
)

type anyValidator struct {
	name     string
	compiled []*good.Schema
}

// Any tries the provided schemas in order and uses the first one that
// succeeds. This is the OR predicate: any of the schemas should match.
func Any(schemas ...any) good.Validator {
	compiled := make([]*good.Schema, len(schemas))
	names := make([]string, len(schemas))
	for i, s := range schemas {
		compiled[i] = good.Must(s)
		names[i] = compiled[i].Name()
	}
	return &anyValidator{
		name:     "Any(" + strings.Join(names, " | ") + ")",
		compiled: compiled,
	}
}

func (a *anyValidator) Name() string { return a.name }

func (a *anyValidator) Validate(v any) (any, error) {
	for _, s := range a.compiled {
		out, err := s.Validate(v)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, good.ErrRemoveValue) {
			return nil, err
		}
		if _, ok := good.AsInvalid(err); !ok {
			// Hard failures pass through unmodified.
			return nil, err
		}
	}
	return nil, &good.Invalid{Message: i18n.T("invalid_value", nil), Expected: a.name, Provided: good.LiteralName(v), Validator: a}
}

type allValidator struct {
	name     string
	compiled []*good.Schema
}

// All requires the value to pass every schema, applied in order with the
// value transformed iteratively. This is the AND predicate, a composition
// of validators: All(f, g) = g(f(value)).
func All(schemas ...any) good.Validator {
	compiled := make([]*good.Schema, len(schemas))
	names := make([]string, len(schemas))
	for i, s := range schemas {
		compiled[i] = good.Must(s)
		names[i] = compiled[i].Name()
	}
	return &allValidator{
		name:     "All(" + strings.Join(names, " & ") + ")",
		compiled: compiled,
	}
}

func (a *allValidator) Name() string { return a.name }

func (a *allValidator) Validate(v any) (any, error) {
	var err error
	for _, s := range a.compiled {
		if v, err = s.Validate(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}
