package good

import "reflect"

// Validator is the contract every compiled schema node satisfies: called
// with a value, it returns the sanitized result or fails with *Invalid or
// *MultipleInvalid. Returning ErrRemoveValue signals that the key or element
// must be dropped from the sanitized container.
//
// Any value implementing Validator can be used as a leaf schema node. Leaves
// may additionally implement Namer to control the "expected" string in
// error messages.
type Validator interface {
	Validate(v any) (any, error)
}

// ValidatorFunc adapts a plain function to the Validator contract.
type ValidatorFunc func(v any) (any, error)

func (f ValidatorFunc) Validate(v any) (any, error) { return f(v) }

// Entry is one key/value pair of an ordered mapping schema.
type Entry struct {
	Key   any
	Value any
}

// Map is a mapping schema with explicit declaration order. Plain Go maps are
// accepted as schemas too, but since they carry no order, their keys are
// canonicalized by display form; use Map when tie-break order matters.
type Map []Entry

// Convenience type nodes for the common schema types.
var (
	String = reflect.TypeOf("")
	Bool   = reflect.TypeOf(false)
	Int    = reflect.TypeOf(int(0))
	Float  = reflect.TypeOf(float64(0))
)

// KeyPolicy is the default behavior for mapping keys that carry no explicit
// marker.
type KeyPolicy int

const (
	// KeyRequired wraps unmarked keys with Required. This is the default.
	KeyRequired KeyPolicy = iota
	// KeyOptional leaves unmarked keys optional.
	KeyOptional
)

type options struct {
	defaultKeys KeyPolicy
	extraKeys   any
}

// Option configures schema compilation.
type Option func(*options)

// WithRequiredKeys makes unmarked mapping keys required (the default).
func WithRequiredKeys() Option {
	return func(o *options) { o.defaultKeys = KeyRequired }
}

// WithOptionalKeys makes unmarked mapping keys optional.
func WithOptionalKeys() Option {
	return func(o *options) { o.defaultKeys = KeyOptional }
}

// WithExtraKeys sets the policy for undeclared mapping keys: Reject() (the
// default), Allow(), Remove(), or any schema to validate extra values with.
func WithExtraKeys(node any) Option {
	return func(o *options) { o.extraKeys = node }
}

// Schema is a compiled, reusable validator for a declared shape of data.
// Immutable after construction and safe for concurrent use: validation
// touches no shared mutable state.
type Schema struct {
	root *compiled
	opts options
}

var _ Validator = (*Schema)(nil)

// New compiles a schema description into a Schema. The description is built
// from nested literals, reflect.Type nodes, Enum nodes, callables
// (Validator, ValidatorFunc or func(any) (any, error)), sequences, mappings
// and markers. Fails with *SchemaError on a structurally invalid
// description.
func New(schema any, opts ...Option) (*Schema, error) {
	o := options{defaultKeys: KeyRequired}
	for _, opt := range opts {
		opt(&o)
	}
	if o.extraKeys == nil {
		o.extraKeys = Reject()
	}
	c := &compiler{opts: o}
	root, err := c.compile(schema)
	if err != nil {
		return nil, err
	}
	return &Schema{root: root, opts: o}, nil
}

// Must is like New but panics on compilation failure. Intended for schemas
// declared at program start.
func Must(schema any, opts ...Option) *Schema {
	s, err := New(schema, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks the value against the schema and returns the sanitized
// result. Fails with *Invalid for a single problem or *MultipleInvalid for
// several; both expose Errors() for uniform iteration.
func (s *Schema) Validate(v any) (any, error) {
	return s.root.validate(v)
}

// Name returns a human-readable name of the root schema node.
func (s *Schema) Name() string { return s.root.name }
