package good

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/kolypto/go-good/i18n"
)

// mapEntry is one compiled key/value pair of a mapping schema.
type mapEntry struct {
	idx    int // declaration index, the documented tie-break
	marker *Marker
	keyC   *compiled // the marker's key matcher
	valueC *compiled
	prio   priority
	// rejectExtra marks the catch-all entry whose policy is rejection: its
	// error message cites extra keys rather than a plain rejection.
	rejectExtra bool
}

// compileMapping compiles a mapping schema from its ordered entries.
//
// At compile time: every key is wrapped with the default-key marker unless
// already marked, entries are grouped by tier with declaration order as the
// tie-break, an implicit Extra entry is appended when absent, and Entire
// hooks are collected separately.
func (c *compiler) compileMapping(schema any, entries []Entry) (*compiled, error) {
	var keys []*mapEntry
	var hooks []*compiled
	haveExtra := false

	for _, e := range entries {
		m, ok := e.Key.(*Marker)
		if !ok {
			if c.opts.defaultKeys == KeyOptional {
				m = Optional(e.Key)
			} else {
				m = Required(e.Key)
			}
		}
		if m.kind == markerEntire {
			hc, err := c.compile(e.Value)
			if err != nil {
				return nil, err
			}
			hooks = append(hooks, hc)
			continue
		}
		mc, err := c.compileMarker(m)
		if err != nil {
			return nil, err
		}
		vc, err := c.compile(e.Value)
		if err != nil {
			return nil, err
		}
		entry := &mapEntry{
			idx:         len(keys),
			marker:      m,
			keyC:        mc.key,
			valueC:      vc,
			prio:        classify(m),
			rejectExtra: m.kind == markerExtra && isReject(e.Value),
		}
		if m.kind == markerExtra {
			haveExtra = true
		}
		keys = append(keys, entry)
	}

	// Two equal literal keys in the same tier are ambiguous.
	for i := 0; i < len(keys); i++ {
		for j := i + 1; j < len(keys); j++ {
			a, b := keys[i], keys[j]
			if a.keyC.kind == kindLiteral && b.keyC.kind == kindLiteral &&
				a.prio == b.prio && eq(a.marker.key, b.marker.key) {
				return nil, &SchemaError{Message: "ambiguous mapping key", Schema: a.marker.key}
			}
		}
	}

	if !haveExtra {
		vc, err := c.compile(c.opts.extraKeys)
		if err != nil {
			return nil, err
		}
		m := Extra()
		keys = append(keys, &mapEntry{
			idx:         len(keys),
			marker:      m,
			keyC:        identityCompiled(),
			valueC:      vc,
			prio:        priExtra,
			rejectExtra: isReject(c.opts.extraKeys),
		})
	}

	// Matching order: tier first, declaration order within a tier.
	sorted := append([]*mapEntry{}, keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].prio > sorted[j].prio })

	cp := &compiled{schema: schema, name: "Dictionary", kind: kindMapping}
	cp.validate = func(v any) (any, error) {
		rv := reflect.ValueOf(v)
		if v == nil || rv.Kind() != reflect.Map {
			return nil, &Invalid{Message: i18n.T("wrong_value_type", nil), Expected: cp.name, Provided: valueTypeName(v), Validator: schema}
		}

		san := newSanitized(rv.Type(), rv.Len())
		matched := make([]int, len(keys))
		var errs []*Invalid

		// Input keys in display order so error order is deterministic.
		inKeys := rv.MapKeys()
		sort.SliceStable(inKeys, func(i, j int) bool {
			return fmt.Sprint(inKeys[i].Interface()) < fmt.Sprint(inKeys[j].Interface())
		})

		for _, kv := range inKeys {
			k := kv.Interface()
			val := rv.MapIndex(kv).Interface()

			var entry *mapEntry
			var k2 any
			for _, e := range sorted {
				if s, ok := e.keyC.match(k); ok {
					entry, k2 = e, s
					break
				}
			}
			if entry == nil {
				// The catch-all entry guarantees a match.
				continue
			}
			matched[entry.idx]++

			switch {
			case entry.marker.kind == markerRemove:
				continue
			case entry.rejectExtra:
				errs = append(errs, &Invalid{
					Message:   i18n.T("extra_forbidden", nil),
					Provided:  literalName(k),
					Path:      []any{k},
					Validator: entry.marker,
				})
				continue
			case entry.marker.kind == markerReject:
				errs = append(errs, &Invalid{
					Message:   i18n.T("value_rejected", nil),
					Provided:  literalName(k),
					Path:      []any{k},
					Validator: entry.marker,
				})
				continue
			}

			out, err := entry.valueC.validate(val)
			switch {
			case errors.Is(err, ErrRemoveValue):
				// Dropped from the sanitized mapping.
			case err != nil:
				errs = appendInvalid(errs, enrichErr(err, "", "", []any{k}, nil))
			default:
				san.set(k2, out)
			}
		}

		// Missing Required keys: synthesize a default when the value schema
		// has default behavior, report otherwise.
		for _, e := range keys {
			if e.marker.kind != markerRequired || matched[e.idx] > 0 {
				continue
			}
			if e.valueC.supportsUndefined && e.keyC.kind == kindLiteral {
				if dv, err := safeValidate(e.valueC, Undefined); err == nil {
					san.set(e.marker.key, dv)
					continue
				}
			}
			var path []any
			if e.keyC.kind == kindLiteral {
				path = []any{e.marker.key}
			}
			errs = append(errs, &Invalid{
				Message:   i18n.T("required_missing", nil),
				Expected:  e.keyC.name,
				Provided:  i18n.T("none", nil),
				Path:      path,
				Validator: e.marker,
			})
		}

		// Whole-mapping hooks run against the assembled sanitized mapping.
		// A hook may mutate the mapping in place, but not replace it.
		outAny := san.value()
		for _, h := range hooks {
			if _, err := h.validate(outAny); err != nil {
				errs = appendInvalid(errs, enrichErr(err, h.name, valueTypeName(outAny), nil, h.schema))
			}
		}

		if err := invalidOrMultiple(errs); err != nil {
			return nil, err
		}
		return san.value(), nil
	}
	cp.match = func(v any) (any, bool) {
		out, err := cp.validate(v)
		return out, err == nil
	}
	return cp, nil
}

func isReject(node any) bool {
	m, ok := node.(*Marker)
	return ok && m.kind == markerReject
}

// sanitizedMap assembles validation output, preferring the input's own map
// type and migrating to map[any]any when a sanitized key or value does not
// fit it.
type sanitizedMap struct {
	rv      reflect.Value
	generic map[any]any
}

func newSanitized(t reflect.Type, n int) *sanitizedMap {
	return &sanitizedMap{rv: reflect.MakeMapWithSize(t, n)}
}

func (s *sanitizedMap) set(k, v any) {
	if s.generic != nil {
		s.generic[k] = v
		return
	}
	t := s.rv.Type()
	kv, kok := valueAs(k, t.Key())
	vv, vok := valueAs(v, t.Elem())
	if kok && vok {
		s.rv.SetMapIndex(kv, vv)
		return
	}
	s.migrate()
	s.generic[k] = v
}

func (s *sanitizedMap) migrate() {
	s.generic = make(map[any]any, s.rv.Len())
	iter := s.rv.MapRange()
	for iter.Next() {
		s.generic[iter.Key().Interface()] = iter.Value().Interface()
	}
}

func (s *sanitizedMap) value() any {
	if s.generic != nil {
		return s.generic
	}
	return s.rv.Interface()
}
