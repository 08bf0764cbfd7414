package good

import "fmt"

// markerKind enumerates the closed set of marker behaviors. New behavior is
// added by adding a kind and teaching the compilers about it, not by
// subclassing.
type markerKind int

const (
	markerRequired markerKind = iota
	markerOptional
	markerRemove
	markerReject
	markerAllow
	markerExtra
	markerEntire
)

var markerNames = map[markerKind]string{
	markerRequired: "Required",
	markerOptional: "Optional",
	markerRemove:   "Remove",
	markerReject:   "Reject",
	markerAllow:    "Allow",
	markerExtra:    "Extra",
	markerEntire:   "Entire",
}

// Marker wraps a schema node to signal special handling for a mapping key or
// its value. Markers are consumed once during compilation; their runtime
// behavior is baked into the generated validator closures.
type Marker struct {
	kind markerKind
	// key is the wrapped schema node. nil means the identity catch-all,
	// which matches any value unchanged.
	key any
}

func (m *Marker) String() string {
	if m.key == nil {
		return markerNames[m.kind]
	}
	return fmt.Sprintf("%s(%v)", markerNames[m.kind], m.key)
}

// tier returns the marker's own matching tier, or ok=false when the marker
// inherits the tier of its wrapped key (Required, Optional, Allow).
func (m *Marker) tier() (priority, bool) {
	switch m.kind {
	case markerRemove:
		return priRemove, true
	case markerReject:
		return priReject, true
	case markerExtra:
		return priExtra, true
	case markerEntire:
		return priEntire, true
	}
	return 0, false
}

func bareKey(key []any) any {
	switch len(key) {
	case 0:
		return nil
	case 1:
		return key[0]
	}
	panic(&SchemaError{Message: "marker accepts at most one key", Schema: key})
}

// Required marks a mapping key that must always be present in the input.
// When the value schema has default behavior (accepts Undefined), a missing
// key is synthesized from the default instead of failing.
func Required(key any) *Marker { return &Marker{markerRequired, key} }

// Optional marks a mapping key as not required. It only prevents the
// schema's default-keys policy from wrapping the key with Required; in every
// other sense it has no special behavior.
func Optional(key any) *Marker { return &Marker{markerOptional, key} }

// Remove declares that matching keys (or values, when used in value
// position) are dropped from the sanitized output without validation.
// Remove has the highest matching priority, so it operates before everything
// else in the schema. Bare Remove() matches anything.
func Remove(key ...any) *Marker { return &Marker{markerRemove, bareKey(key)} }

// Reject reports an error every time it matches something in the input. It
// sits below ordinary schemas in priority, so rejection only happens when
// nothing else matched. Bare Reject() matches anything.
func Reject(key ...any) *Marker { return &Marker{markerReject, bareKey(key)} }

// Allow is a no-op marker that never complains about anything. Designed to
// be used as an extra-keys policy.
func Allow(key ...any) *Marker { return &Marker{markerAllow, bareKey(key)} }

// Extra is the catch-all marker defining the behavior for mapping keys not
// declared in the schema. It matches last, and delegates the decision to its
// value: a schema validates the extra value, Allow passes it through, Remove
// drops it, Reject complains. Every mapping has an implicit Extra entry
// configured by the schema's extra-keys policy.
func Extra() *Marker { return &Marker{markerExtra, nil} }

// Entire is a whole-mapping post-validation hook. It never matches any key;
// instead, its value schema receives the fully assembled sanitized mapping
// (after required-key defaulting) and may mutate it in place, but not
// replace it. Cross-field constraints such as Inclusive and Exclusive are
// built on it.
func Entire() *Marker { return &Marker{markerEntire, nil} }
