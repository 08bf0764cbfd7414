package validators

import (
	"reflect"
	"regexp"

	good "github.com/kolypto/go-good"
	"github.com/kolypto/go-good/i18n"
)

type matchValidator struct {
	name string
	rx   *regexp.Regexp
}

// Match validates a string against a regular expression. The pattern is
// compiled at construction; a malformed pattern panics with the compilation
// error.
func Match(pattern string) good.Validator {
	rx, err := regexp.Compile(pattern)
	if err != nil {
		panic(&good.SchemaError{Message: err.Error(), Schema: pattern})
	}
	return &matchValidator{name: "Match(/" + pattern + "/)", rx: rx}
}

func (m *matchValidator) Name() string { return m.name }

func (m *matchValidator) Validate(v any) (any, error) {
	rv := reflect.ValueOf(v)
	if v == nil || rv.Kind() != reflect.String {
		return nil, &good.Invalid{Message: i18n.T("wrong_type", nil), Expected: "String", Provided: good.TypeNameOf(v), Validator: m}
	}
	if !m.rx.MatchString(rv.String()) {
		return nil, &good.Invalid{Message: i18n.T("no_match", nil), Expected: m.name, Provided: good.LiteralName(v), Validator: m}
	}
	return v, nil
}
