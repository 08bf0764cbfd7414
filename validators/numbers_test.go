package validators_test

import (
	"testing"

	good "github.com/kolypto/go-good"
	"github.com/kolypto/go-good/validators"
)

func TestRange(t *testing.T) {
	s := good.Must(validators.Range().Min(1).Max(10))
	for _, ok := range []any{1, 5, 10, 9.5, uint(3)} {
		if _, err := s.Validate(ok); err != nil {
			t.Errorf("Validate(%v) error: %v", ok, err)
		}
	}

	_, err := s.Validate(11)
	ee, ok := good.AsInvalid(err)
	if !ok || len(ee) != 1 {
		t.Fatalf("Validate(11) error: %v", err)
	}
	if ee[0].Message != "Value out of range" {
		t.Errorf("Message = %q", ee[0].Message)
	}
	if ee[0].Expected != "Range(1..10)" {
		t.Errorf("Expected = %q", ee[0].Expected)
	}

	// Not a number.
	if _, err := s.Validate("5"); err == nil {
		t.Fatal("Validate(string) expected error")
	}
}

func TestRange_OneBound(t *testing.T) {
	s := good.Must(validators.Range().Min(0))
	if _, err := s.Validate(1000000); err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if _, err := s.Validate(-1); err == nil {
		t.Fatal("Validate(-1) expected error")
	}
}

func TestClamp(t *testing.T) {
	s := good.Must(validators.Clamp().Min(1).Max(10))

	// Out-of-range values snap to the bound, in the input's own type.
	if v, err := s.Validate(0); err != nil || v != 1 {
		t.Fatalf("Validate(0) = %v, %v", v, err)
	}
	if v, err := s.Validate(99.5); err != nil || v != 10.0 {
		t.Fatalf("Validate(99.5) = %v, %v", v, err)
	}
	if v, err := s.Validate(5); err != nil || v != 5 {
		t.Fatalf("Validate(5) = %v, %v", v, err)
	}
}
