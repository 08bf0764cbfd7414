package good_test

import (
	"errors"
	"reflect"
	"testing"

	good "github.com/kolypto/go-good"
)

func TestLiteralSchema(t *testing.T) {
	s := good.Must(1)

	v, err := s.Validate(1)
	if err != nil || v != 1 {
		t.Fatalf("expected 1, got v=%v err=%v", v, err)
	}

	_, err = s.Validate(2)
	var inv *good.Invalid
	if !errors.As(err, &inv) {
		t.Fatalf("expected Invalid, got %v", err)
	}
	if inv.Expected != "1" || inv.Provided != "2" {
		t.Fatalf("expected/provided mismatch: %v", inv)
	}

	// Literal mismatch on type is reported as a type problem.
	_, err = s.Validate("1")
	if !errors.As(err, &inv) || inv.Expected != "Integer number" {
		t.Fatalf("expected type error, got %v", err)
	}
}

func TestTypeSchema(t *testing.T) {
	s := good.Must(good.Int)

	if v, err := s.Validate(1); err != nil || v != 1 {
		t.Fatalf("expected 1, got v=%v err=%v", v, err)
	}

	// Booleans do not satisfy an integer schema.
	if _, err := s.Validate(true); err == nil {
		t.Fatalf("expected error for bool input")
	}
	if _, err := s.Validate("1"); err == nil {
		t.Fatalf("expected error for string input")
	}
	if _, err := s.Validate(nil); err == nil {
		t.Fatalf("expected error for nil input")
	}
}

type customString string

func TestTypeSchema_StringKindRelaxation(t *testing.T) {
	s := good.Must(good.String)
	v, err := s.Validate(customString("hi"))
	if err != nil {
		t.Fatalf("named string type should match a string schema: %v", err)
	}
	if v != customString("hi") {
		t.Fatalf("value changed: %v", v)
	}
}

func TestEnumSchema(t *testing.T) {
	s := good.Must(good.Enum("red", "green", "blue"))
	if v, err := s.Validate("green"); err != nil || v != "green" {
		t.Fatalf("expected green, got v=%v err=%v", v, err)
	}
	if _, err := s.Validate("yellow"); err == nil {
		t.Fatalf("expected error for unknown enum value")
	}
}

func TestCallableSchema(t *testing.T) {
	double := func(v any) (any, error) { return v.(int) * 2, nil }
	s := good.Must(double)
	if v, err := s.Validate(2); err != nil || v != 4 {
		t.Fatalf("expected 4, got v=%v err=%v", v, err)
	}

	// A returned error is soft: wrapped into Invalid.
	fail := good.ValidatorFunc(func(v any) (any, error) {
		return nil, errors.New("no good")
	})
	s = good.Must(fail)
	_, err := s.Validate(1)
	var inv *good.Invalid
	if !errors.As(err, &inv) || inv.Message != "no good" {
		t.Fatalf("expected wrapped Invalid, got %v", err)
	}

	// A returned Invalid passes through, enriched only where unset.
	ready := good.ValidatorFunc(func(v any) (any, error) {
		return nil, &good.Invalid{Message: "custom", Expected: "something"}
	})
	_, err = good.Must(ready).Validate(1)
	if !errors.As(err, &inv) || inv.Expected != "something" {
		t.Fatalf("expected pre-set Expected to survive, got %v", err)
	}
}

func TestSequenceSchema(t *testing.T) {
	s := good.Must([]any{1, 2, 3})

	v, err := s.Validate([]any{1, 2, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(v, []any{1, 2, 2}) {
		t.Fatalf("unexpected sanitized value: %v", v)
	}

	_, err = s.Validate([]any{1, 2, 4})
	var inv *good.Invalid
	if !errors.As(err, &inv) {
		t.Fatalf("expected Invalid, got %v", err)
	}
	if !reflect.DeepEqual(inv.Path, []any{2}) {
		t.Fatalf("expected path [2], got %v", inv.Path)
	}

	// Sequence kind is strict: an array is not a slice.
	if _, err = s.Validate([3]int{1, 2, 2}); err == nil {
		t.Fatalf("expected type mismatch for array input")
	}
}

func TestSequenceSchema_TypedSliceMirrored(t *testing.T) {
	s := good.Must([]any{good.Int})
	v, err := s.Validate([]int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.([]int); !ok {
		t.Fatalf("expected sanitized []int, got %T", v)
	}
}

func TestSequenceSchema_CollectsAllErrors(t *testing.T) {
	s := good.Must([]any{good.Int})
	_, err := s.Validate([]any{1, "a", 2, "b"})
	ee, ok := good.AsInvalid(err)
	if !ok || len(ee) != 2 {
		t.Fatalf("expected 2 collected errors, got %v", err)
	}
	if !reflect.DeepEqual(ee[0].Path, []any{1}) || !reflect.DeepEqual(ee[1].Path, []any{3}) {
		t.Fatalf("wrong paths: %v / %v", ee[0].Path, ee[1].Path)
	}
}

func TestIdempotence(t *testing.T) {
	s := good.Must(map[string]any{
		"name": good.String,
		"tags": []any{good.String},
	}, good.WithOptionalKeys())

	in := map[string]any{"name": "Alex", "tags": []any{"a", "b"}}
	once, err := s.Validate(in)
	if err != nil {
		t.Fatalf("first pass: %v", err)
	}
	twice, err := s.Validate(once)
	if err != nil {
		t.Fatalf("second pass: %v", err)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("not idempotent: %v != %v", once, twice)
	}
}

func TestEmbeddedSchema(t *testing.T) {
	inner := good.Must(good.Int)
	s := good.Must(map[string]any{"age": inner})
	v, err := s.Validate(map[string]any{"age": 18})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(map[string]any)["age"] != 18 {
		t.Fatalf("unexpected value: %v", v)
	}
}

func TestSchemaError(t *testing.T) {
	type opaque struct{ x chan int }
	_, err := good.New(opaque{})
	var se *good.SchemaError
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError, got %v", err)
	}

	// Two equal literal keys in one tier are ambiguous.
	_, err = good.New(good.Map{
		{Key: "name", Value: good.String},
		{Key: good.Optional("name"), Value: good.Int},
	})
	if !errors.As(err, &se) {
		t.Fatalf("expected SchemaError for ambiguous keys, got %v", err)
	}
}

func TestMust_PanicsOnBadSchema(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	good.Must(struct{ ch chan int }{})
}
