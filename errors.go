package good

import (
	"errors"
	"fmt"
	"strings"
)

// SchemaError reports a structurally invalid schema description. It is only
// produced at compile time; validation never raises it.
type SchemaError struct {
	Message string
	Schema  any // the offending schema node
}

func (e *SchemaError) Error() string {
	if e.Schema == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Schema)
}

// Invalid is a validation error for a single value.
//
// The error is guaranteed to carry values meaningful to the user: what was
// expected, what was provided, and the path to the offending value.
type Invalid struct {
	// Message is the user-facing validation error message.
	Message string
	// Expected describes the value the validator was expecting. When a
	// validator does not specify it, the validator's name is used.
	Expected string
	// Provided describes the value that was actually supplied.
	Provided string
	// Path locates the error value: for a failure at input["a"]["b"][1] the
	// path is []any{"a", "b", 1}. Relative to where the error was raised;
	// outer containers prepend their own key or index via Enrich.
	Path []any
	// Validator is the schema node that failed.
	Validator any
	// Info carries custom values provided by the validator.
	Info map[string]any
}

// NewInvalid builds a single validation error. Path, Validator and Info can
// be set on the returned value directly.
func NewInvalid(message, expected, provided string) *Invalid {
	return &Invalid{Message: message, Expected: expected, Provided: provided}
}

func (e *Invalid) Error() string {
	b := &strings.Builder{}
	b.WriteString(e.Message)
	if len(e.Path) > 0 {
		b.WriteString(" @ ")
		b.WriteString(pathString(e.Path))
	}
	fmt.Fprintf(b, ": expected %s, got %s", orNone(e.Expected), orNone(e.Provided))
	return b.String()
}

// Errors yields the contained errors. For Invalid it is just the error
// itself; together with MultipleInvalid.Errors this allows processing both
// kinds uniformly.
func (e *Invalid) Errors() []*Invalid { return []*Invalid{e} }

// Enrich sets the given fields on the error, but only where currently unset.
// The one exclusion is path: when provided, it is prepended to Invalid.Path,
// never overwritten. This is how containers annotate inner failures with the
// outer key or index.
func (e *Invalid) Enrich(expected, provided string, path []any, validator any) *Invalid {
	if e.Expected == "" && expected != "" {
		e.Expected = expected
	}
	if e.Provided == "" && provided != "" {
		e.Provided = provided
	}
	if e.Validator == nil && validator != nil {
		e.Validator = validator
	}
	if len(path) > 0 {
		e.Path = append(append([]any{}, path...), e.Path...)
	}
	return e
}

// MultipleInvalid aggregates two or more validation errors, e.g. for several
// mapping keys. The contained list is guaranteed to be flat: nested
// MultipleInvalid errors are recursively unwound on construction.
//
// The embedded Invalid mirrors the first contained error, so the aggregate
// exposes the same accessor surface as a single error.
type MultipleInvalid struct {
	Invalid
	errs []*Invalid
}

// NewMultipleInvalid builds an aggregate from the given errors, flattening
// any MultipleInvalid found among them. Returns nil when errs is empty.
func NewMultipleInvalid(errs ...error) *MultipleInvalid {
	var flat []*Invalid
	for _, err := range errs {
		if ee, ok := AsInvalid(err); ok {
			flat = append(flat, ee...)
		}
	}
	return newMultiple(flat)
}

func newMultiple(flat []*Invalid) *MultipleInvalid {
	if len(flat) == 0 {
		return nil
	}
	return &MultipleInvalid{Invalid: *flat[0], errs: flat}
}

// Errors yields the flat list of contained errors.
func (e *MultipleInvalid) Errors() []*Invalid { return e.errs }

// Error summarizes the first few contained errors.
func (e *MultipleInvalid) Error() string {
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(e.errs)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.errs[i].Error())
	}
	if n := len(e.errs); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Enrich applies the defaults to every contained error, then refreshes the
// head fields from the first one.
func (e *MultipleInvalid) Enrich(expected, provided string, path []any, validator any) *MultipleInvalid {
	for _, ee := range e.errs {
		ee.Enrich(expected, provided, path, validator)
	}
	e.Invalid = *e.errs[0]
	return e
}

// AsInvalid extracts the flat list of single errors from a validation error,
// whether it is an Invalid or a MultipleInvalid. Reports false for any other
// error kind.
func AsInvalid(err error) ([]*Invalid, bool) {
	if err == nil {
		return nil, false
	}
	var multi *MultipleInvalid
	if errors.As(err, &multi) {
		return multi.Errors(), true
	}
	var single *Invalid
	if errors.As(err, &single) {
		return single.Errors(), true
	}
	return nil, false
}

// enrichErr applies Enrich to a validation error of either kind and returns
// it unchanged otherwise.
func enrichErr(err error, expected, provided string, path []any, validator any) error {
	switch e := err.(type) {
	case *MultipleInvalid:
		return e.Enrich(expected, provided, path, validator)
	case *Invalid:
		return e.Enrich(expected, provided, path, validator)
	}
	return err
}

// invalidOrMultiple chooses which error to report: the sole Invalid when
// there is exactly one problem, MultipleInvalid otherwise.
func invalidOrMultiple(errs []*Invalid) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return newMultiple(errs)
}

// appendInvalid flattens err into dst. Non-validation errors are wrapped so
// they are never silently lost.
func appendInvalid(dst []*Invalid, err error) []*Invalid {
	if ee, ok := AsInvalid(err); ok {
		return append(dst, ee...)
	}
	return append(dst, &Invalid{Message: err.Error()})
}

func pathString(path []any) string {
	b := &strings.Builder{}
	for _, tok := range path {
		fmt.Fprintf(b, "[%v]", tok)
	}
	return b.String()
}

func orNone(s string) string {
	if s == "" {
		return "-none-"
	}
	return s
}
