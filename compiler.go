package good

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/kolypto/go-good/i18n"
)

// compiledKind tags the recognized shape of a schema node. Matched once at
// compile time; runtime dispatch is baked into the validate closures.
type compiledKind int

const (
	kindLiteral compiledKind = iota
	kindType
	kindEnum
	kindCallable
	kindIterable
	kindMapping
	kindMarker
)

// compiled is one node of the validator tree.
type compiled struct {
	schema any    // the original schema node
	name   string // human-readable name, used in error messages
	kind   compiledKind

	// validate checks a value and returns the sanitized result. Fails with
	// *Invalid or *MultipleInvalid; returns ErrRemoveValue to signal a drop.
	validate func(v any) (any, error)
	// match is the cheap matcher used in mapping-key position: reports
	// whether the value matches and returns the sanitized key.
	match func(v any) (any, bool)

	// supportsUndefined is probed once at compile time: whether validate
	// accepts the Undefined placeholder, i.e. declares default behavior.
	supportsUndefined bool

	// marker and key are set for kindMarker nodes.
	marker *Marker
	key    *compiled
}

// compiler turns raw schema nodes into compiled validators, recursively.
// Compilation fails fast with *SchemaError; validation failures are produced
// by the generated closures at call time.
type compiler struct {
	opts options
}

func (c *compiler) compile(node any) (*compiled, error) {
	switch n := node.(type) {
	case nil:
		return c.compileLiteral(nil), nil
	case *Schema:
		// Pre-compiled schemas are embedded as-is.
		return n.root, nil
	case *Marker:
		return c.compileMarker(n)
	case reflect.Type:
		return c.compileType(n), nil
	case *EnumNode:
		return c.compileEnum(n), nil
	case Map:
		return c.compileMapping(n, []Entry(n))
	case Validator:
		// ValidatorFunc lands here too.
		return c.compileCallable(n, n.Validate), nil
	case func(any) (any, error):
		return c.compileCallable(n, n), nil
	}

	rv := reflect.ValueOf(node)
	switch rv.Kind() {
	case reflect.Map:
		return c.compileMapping(node, sortedMapEntries(rv))
	case reflect.Slice, reflect.Array:
		return c.compileIterable(node)
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return c.compileLiteral(node), nil
	}
	return nil, &SchemaError{Message: fmt.Sprintf("unsupported schema data type %T", node), Schema: node}
}

// compileLiteral compiles a plain value: type check, then equality check.
func (c *compiler) compileLiteral(schema any) *compiled {
	st := reflect.TypeOf(schema) // nil for the nil literal
	name := literalName(schema)
	cp := &compiled{schema: schema, name: name, kind: kindLiteral}
	cp.validate = func(v any) (any, error) {
		if schema == nil {
			if v == nil {
				return nil, nil
			}
			return nil, &Invalid{Message: i18n.T("wrong_value_type", nil), Expected: "None", Provided: valueTypeName(v), Validator: schema}
		}
		if v == nil || reflect.TypeOf(v) != st {
			return nil, &Invalid{Message: i18n.T("wrong_value_type", nil), Expected: typeName(st), Provided: valueTypeName(v), Validator: schema}
		}
		if !eq(v, schema) {
			return nil, &Invalid{Message: i18n.T("invalid_value", nil), Expected: name, Provided: literalName(v), Validator: schema}
		}
		return v, nil
	}
	cp.match = func(v any) (any, bool) {
		if schema == nil {
			return nil, v == nil
		}
		return v, eq(v, schema)
	}
	return cp
}

// compileType compiles a type node: strict type identity, with two
// relaxations that belong to Go's type model. A string-kinded schema matches
// any string-kinded value, and an interface type matches implementations.
func (c *compiler) compileType(t reflect.Type) *compiled {
	name := typeName(t)
	cp := &compiled{schema: t, name: name, kind: kindType}
	cp.validate = func(v any) (any, error) {
		if !typeMatches(t, v) {
			return nil, &Invalid{Message: i18n.T("wrong_type", nil), Expected: name, Provided: valueTypeName(v), Validator: t}
		}
		return v, nil
	}
	cp.match = func(v any) (any, bool) { return v, typeMatches(t, v) }
	return cp
}

func typeMatches(t reflect.Type, v any) bool {
	if v == nil {
		return false
	}
	vt := reflect.TypeOf(v)
	if vt == t {
		return true
	}
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	// String-like category: named string types satisfy a string schema.
	return t.Kind() == reflect.String && vt.Kind() == reflect.String
}

// EnumNode declares a closed set of allowed values, matched at the same
// priority tier as types. Membership is an equality test; the matched
// schema value replaces the input, so mixed representations normalize.
type EnumNode struct {
	values []any
	name   string
}

// Enum builds an enum schema node from the allowed values.
func Enum(values ...any) *EnumNode {
	name := "Enum("
	for i, v := range values {
		if i > 0 {
			name += "|"
		}
		name += literalName(v)
	}
	return &EnumNode{values: values, name: name + ")"}
}

func (c *compiler) compileEnum(e *EnumNode) *compiled {
	cp := &compiled{schema: e, name: e.name, kind: kindEnum}
	cp.validate = func(v any) (any, error) {
		for _, allowed := range e.values {
			if eq(v, allowed) {
				return allowed, nil
			}
		}
		return nil, &Invalid{Message: i18n.T("value_not_allowed", nil), Expected: e.name, Provided: literalName(v), Validator: e}
	}
	cp.match = func(v any) (any, bool) {
		for _, allowed := range e.values {
			if eq(v, allowed) {
				return allowed, true
			}
		}
		return nil, false
	}
	return cp
}

// compileCallable wraps a leaf callable. Errors returned by the leaf are
// soft: they become Invalid unless they already are one, or carry the drop
// signal. Panics are deliberately not recovered here; an arbitrary host
// failure propagates to the caller unmodified.
func (c *compiler) compileCallable(fn any, call func(any) (any, error)) *compiled {
	name := callableName(fn)
	cp := &compiled{schema: fn, name: name, kind: kindCallable}
	cp.validate = func(v any) (any, error) {
		out, err := call(v)
		if err == nil {
			return out, nil
		}
		if errors.Is(err, ErrRemoveValue) {
			return nil, err
		}
		if _, ok := AsInvalid(err); ok {
			return nil, enrichErr(err, name, "", nil, fn)
		}
		return nil, &Invalid{Message: err.Error(), Expected: name, Provided: literalName(v), Validator: fn}
	}
	cp.match = func(v any) (any, bool) {
		out, err := cp.validate(v)
		if err != nil {
			return nil, false
		}
		return out, true
	}
	if _, err := safeValidate(cp, Undefined); err == nil {
		cp.supportsUndefined = true
	}
	return cp
}

// compileIterable compiles a sequence schema: the input must have the same
// sequence kind, and each element must match any of the member schemas,
// tried in priority order with declaration order as the tie-break.
func (c *compiler) compileIterable(schema any) (*compiled, error) {
	sv := reflect.ValueOf(schema)
	seqKind := sv.Kind()
	name := typeName(sv.Type())

	type member struct {
		raw  any
		prio priority
		c    *compiled
	}
	members := make([]member, sv.Len())
	for i := 0; i < sv.Len(); i++ {
		raw := sv.Index(i).Interface()
		mc, err := c.compile(raw)
		if err != nil {
			return nil, err
		}
		members[i] = member{raw: raw, prio: classify(raw), c: mc}
	}
	sort.SliceStable(members, func(i, j int) bool { return members[i].prio > members[j].prio })

	cp := &compiled{schema: schema, name: name, kind: kindIterable}
	cp.validate = func(v any) (any, error) {
		rv := reflect.ValueOf(v)
		if v == nil || rv.Kind() != seqKind {
			return nil, &Invalid{Message: i18n.T("wrong_value_type", nil), Expected: name, Provided: valueTypeName(v), Validator: schema}
		}
		out := make([]any, 0, rv.Len())
		var errs []*Invalid
		for i := 0; i < rv.Len(); i++ {
			el := rv.Index(i).Interface()
			matched := false
			for _, m := range members {
				mout, err := m.c.validate(el)
				if err == nil {
					out = append(out, mout)
					matched = true
					break
				}
				if errors.Is(err, ErrRemoveValue) {
					// Dropped from the sanitized output entirely.
					matched = true
					break
				}
			}
			if !matched {
				errs = append(errs, &Invalid{
					Message:   i18n.T("invalid_value", nil),
					Provided:  literalName(el),
					Path:      []any{i},
					Validator: schema,
				})
			}
		}
		if err := invalidOrMultiple(errs); err != nil {
			return nil, err
		}
		return mirrorSequence(v, out), nil
	}
	cp.match = func(v any) (any, bool) {
		out, err := cp.validate(v)
		return out, err == nil
	}
	return cp, nil
}

// mirrorSequence rebuilds the sanitized elements as the input's own slice
// type when every element is assignable, and falls back to []any otherwise.
func mirrorSequence(input any, out []any) any {
	it := reflect.TypeOf(input)
	if it.Kind() != reflect.Slice || it.Elem().Kind() == reflect.Interface {
		// Array inputs sanitize into a plain slice as well.
		return out
	}
	elem := it.Elem()
	res := reflect.MakeSlice(it, 0, len(out))
	for _, el := range out {
		ev, ok := valueAs(el, elem)
		if !ok {
			return out
		}
		res = reflect.Append(res, ev)
	}
	return res.Interface()
}

// valueAs converts a value to a reflect.Value assignable to t, handling nil
// for nilable kinds.
func valueAs(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return rv, true
}

// compileMarker compiles a marker for value position or mapping-key usage.
// The marker's key schema provides matching; the marker kind decides what a
// match means.
func (c *compiler) compileMarker(m *Marker) (*compiled, error) {
	var keyC *compiled
	if m.key == nil {
		keyC = identityCompiled()
	} else {
		var err error
		if keyC, err = c.compile(m.key); err != nil {
			return nil, err
		}
	}
	cp := &compiled{schema: m, name: keyC.name, kind: kindMarker, marker: m, key: keyC}
	cp.match = keyC.match
	switch m.kind {
	case markerRemove:
		// In value position: drop matching values from the output.
		cp.validate = func(v any) (any, error) {
			if _, ok := keyC.match(v); ok {
				return nil, ErrRemoveValue
			}
			return nil, &Invalid{Message: i18n.T("invalid_value", nil), Expected: cp.name, Provided: literalName(v), Validator: m}
		}
	case markerReject:
		// In value position: always complain.
		cp.validate = func(v any) (any, error) {
			return nil, &Invalid{Message: i18n.T("value_rejected", nil), Provided: literalName(v), Validator: m}
		}
	default:
		cp.validate = keyC.validate
	}
	return cp, nil
}

// identityCompiled is the catch-all schema used for bare markers: matches
// any value unchanged.
func identityCompiled() *compiled {
	cp := &compiled{name: "*", kind: kindCallable}
	cp.validate = func(v any) (any, error) { return v, nil }
	cp.match = func(v any) (any, bool) { return v, true }
	return cp
}

// safeValidate invokes a compiled validator, converting panics into errors.
// Used for the compile-time Undefined probe and default synthesis, where a
// leaf may not anticipate the placeholder at all.
func safeValidate(c *compiled, v any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("validator panic: %v", r)
		}
	}()
	out, err = c.validate(v)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// sortedMapEntries canonicalizes a plain Go map into ordered entries. Go
// maps have no declaration order, so keys are sorted by their display form
// to keep tie-breaks deterministic.
func sortedMapEntries(rv reflect.Value) []Entry {
	keys := rv.MapKeys()
	sort.SliceStable(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k.Interface(), Value: rv.MapIndex(k).Interface()})
	}
	return entries
}
