package good

import "reflect"

// priority is the matching tier of a schema node. When a mapping matches an
// input key against its key schemas, higher tiers are tried first; ties
// within a tier are broken by declaration order (the sort is stable).
type priority int

const (
	// Remove keys operate before everything else in the schema.
	priRemove priority = 1000
	// Literals override types and catch-alls declared in the same mapping.
	priLiteral priority = 100
	// Types and enums.
	priType priority = 50
	// Callables, sequences, mappings and embedded schemas share one tier:
	// evaluated in declaration order, first success wins.
	priCallable priority = 0
	// Rejection only fires when no ordinary schema matched.
	priReject priority = -50
	// The catch-all matches last among key schemas.
	priExtra priority = -1000
	// Entire never matches a key; it runs against the whole mapping.
	priEntire priority = -2000
)

// classify assigns the matching tier of a raw schema node. Pure and total:
// every well-formed node has a defined tier, and malformed nodes fail later
// at compilation, not here.
func classify(node any) priority {
	if m, ok := node.(*Marker); ok {
		if p, own := m.tier(); own {
			return p
		}
		if m.key == nil {
			// Bare Required()/Optional()/Allow() are identity catch-alls.
			return priCallable
		}
		return classify(m.key)
	}
	switch node.(type) {
	case reflect.Type, *EnumNode:
		return priType
	case *Schema, Validator, ValidatorFunc, Map:
		return priCallable
	}
	switch rv := reflect.ValueOf(node); rv.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice, reflect.Array:
		return priCallable
	}
	return priLiteral
}
