package good

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"sync"

	"github.com/kolypto/go-good/i18n"
)

// Namer lets a leaf validator expose a display name used in error messages
// in place of its function name.
type Namer interface {
	Name() string
}

var typeNames = struct {
	sync.RWMutex
	m map[reflect.Type]string
}{m: map[reflect.Type]string{}}

// RegisterTypeName registers a human-friendly name for the given type, to be
// used in Invalid errors instead of the raw Go type name.
func RegisterTypeName(t reflect.Type, name string) {
	typeNames.Lock()
	defer typeNames.Unlock()
	typeNames.m[t] = name
}

// TypeName returns the human-friendly name of a type, as shown in error
// messages.
func TypeName(t reflect.Type) string { return typeName(t) }

// TypeNameOf returns the human-friendly type name of a value.
func TypeNameOf(v any) string { return valueTypeName(v) }

// LiteralName renders a value the way error messages show it.
func LiteralName(v any) string { return literalName(v) }

// typeName returns a human-friendly name for the given type.
func typeName(t reflect.Type) string {
	if t == nil {
		return "None"
	}
	typeNames.RLock()
	name, ok := typeNames.m[t]
	typeNames.RUnlock()
	if ok {
		return name
	}
	switch t.Kind() {
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Integer number"
	case reflect.Float32, reflect.Float64:
		return "Fractional number"
	case reflect.Complex64, reflect.Complex128:
		return "Complex number"
	case reflect.String:
		return "String"
	case reflect.Slice:
		return "List"
	case reflect.Array:
		return "Tuple"
	case reflect.Map:
		return "Dictionary"
	}
	if name := t.Name(); name != "" {
		return strings.ToUpper(name[:1]) + name[1:]
	}
	return t.String()
}

// valueTypeName returns the human-friendly type name of a value.
func valueTypeName(v any) string {
	if v == nil {
		return "None"
	}
	if _, ok := v.(undefinedType); ok {
		return i18n.T("none", nil)
	}
	return typeName(reflect.TypeOf(v))
}

// literalName renders a value the way it is shown to users in error messages.
func literalName(v any) string {
	switch v := v.(type) {
	case nil:
		return "None"
	case undefinedType:
		return i18n.T("none", nil)
	case string:
		return v
	}
	return fmt.Sprintf("%v", v)
}

// callableName derives a display name for a leaf callable: the Namer
// interface wins, then the function's own name, then its type.
func callableName(fn any) string {
	if n, ok := fn.(Namer); ok {
		return n.Name()
	}
	rv := reflect.ValueOf(fn)
	if rv.Kind() == reflect.Func {
		if f := runtime.FuncForPC(rv.Pointer()); f != nil {
			name := f.Name()
			if i := strings.LastIndexByte(name, '/'); i >= 0 {
				name = name[i+1:]
			}
			if i := strings.IndexByte(name, '.'); i >= 0 {
				name = name[i+1:]
			}
			return strings.TrimSuffix(name, "-fm")
		}
	}
	return fmt.Sprintf("%T", fn)
}

// eq compares two values for equality without panicking on uncomparable
// operands.
func eq(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if !ta.Comparable() || !tb.Comparable() {
		return false
	}
	return a == b
}
