package good_test

import (
	"reflect"
	"testing"

	good "github.com/kolypto/go-good"
)

func TestRemove_KeyPosition(t *testing.T) {
	s := good.Must(good.Map{
		{Key: "name", Value: good.String},
		{Key: good.Remove("password"), Value: good.String},
	})
	v, err := s.Validate(map[string]any{"name": "Alex", "password": "hunter2"})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"name": "Alex"}) {
		t.Fatalf("Validate() = %#v", v)
	}

	// Removed keys are never required, and never validated.
	if _, err := s.Validate(map[string]any{"name": "Alex"}); err != nil {
		t.Fatalf("Validate() without removed key: %v", err)
	}
	if _, err := s.Validate(map[string]any{"name": "Alex", "password": 42}); err != nil {
		t.Fatalf("Validate() with non-string removed value: %v", err)
	}
}

func TestRemove_ValuePosition(t *testing.T) {
	s := good.Must(good.Map{
		{Key: "name", Value: good.String},
		{Key: good.Optional("secret"), Value: good.Remove()},
	})
	v, err := s.Validate(map[string]any{"name": "Alex", "secret": "x"})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"name": "Alex"}) {
		t.Fatalf("Validate() = %#v", v)
	}
}

func TestRemove_InSequence(t *testing.T) {
	s := good.Must([]any{good.Int, good.Remove("x")})
	v, err := s.Validate([]any{1, "x", 2})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !reflect.DeepEqual(v, []any{1, 2}) {
		t.Fatalf("Validate() = %#v", v)
	}
}

func TestReject_KeyPosition(t *testing.T) {
	s := good.Must(good.Map{
		{Key: "name", Value: good.String},
		{Key: good.Reject("admin"), Value: nil},
	})

	// Absent: fine.
	if _, err := s.Validate(map[string]any{"name": "Alex"}); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	// Present: always an error, no matter the value.
	_, err := s.Validate(map[string]any{"name": "Alex", "admin": true})
	ee, ok := good.AsInvalid(err)
	if !ok || len(ee) != 1 {
		t.Fatalf("Validate() error: %v", err)
	}
	if ee[0].Message != "Value rejected" {
		t.Errorf("Message = %q", ee[0].Message)
	}
	if !reflect.DeepEqual(ee[0].Path, []any{"admin"}) {
		t.Errorf("Path = %v", ee[0].Path)
	}
}

func TestReject_ValuePosition(t *testing.T) {
	s := good.Must(good.Map{
		{Key: good.Optional("legacy"), Value: good.Reject()},
	})
	if _, err := s.Validate(map[string]any{}); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	_, err := s.Validate(map[string]any{"legacy": 1})
	ee, ok := good.AsInvalid(err)
	if !ok || len(ee) != 1 || ee[0].Message != "Value rejected" {
		t.Fatalf("Validate() error: %v", err)
	}
}

func TestExtra_WithSchema(t *testing.T) {
	s := good.Must(good.Map{
		{Key: "name", Value: good.String},
		{Key: good.Extra(), Value: good.Int},
	})
	v, err := s.Validate(map[string]any{"name": "Alex", "a": 1, "b": 2})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !reflect.DeepEqual(v, map[string]any{"name": "Alex", "a": 1, "b": 2}) {
		t.Fatalf("Validate() = %#v", v)
	}
	if _, err := s.Validate(map[string]any{"name": "Alex", "a": "nope"}); err == nil {
		t.Fatal("Validate() expected error for mismatched extra value")
	}
}

func TestEntire_Hook(t *testing.T) {
	// The hook sees the sanitized mapping and may mutate it in place.
	hook := func(v any) (any, error) {
		m := v.(map[string]any)
		m["greeting"] = "hello, " + m["name"].(string)
		return v, nil
	}
	s := good.Must(good.Map{
		{Key: "name", Value: good.String},
		{Key: good.Entire(), Value: hook},
	})
	v, err := s.Validate(map[string]any{"name": "Alex"})
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	want := map[string]any{"name": "Alex", "greeting": "hello, Alex"}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("Validate() = %#v", v)
	}
}

func TestEntire_HookError(t *testing.T) {
	hook := func(v any) (any, error) {
		return nil, &good.Invalid{Message: "Bad combination"}
	}
	s := good.Must(good.Map{
		{Key: "name", Value: good.String},
		{Key: good.Entire(), Value: hook},
	})
	_, err := s.Validate(map[string]any{"name": "Alex"})
	ee, ok := good.AsInvalid(err)
	if !ok || len(ee) != 1 {
		t.Fatalf("Validate() error: %v", err)
	}
	if ee[0].Message != "Bad combination" {
		t.Errorf("Message = %q", ee[0].Message)
	}
	if len(ee[0].Path) != 0 {
		t.Errorf("Path = %v", ee[0].Path)
	}
}

func TestMarker_String(t *testing.T) {
	for _, tc := range []struct {
		m    *good.Marker
		want string
	}{
		{good.Required("name"), "Required(name)"},
		{good.Optional("age"), "Optional(age)"},
		{good.Remove(), "Remove"},
		{good.Extra(), "Extra"},
	} {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
