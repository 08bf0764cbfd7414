package good

import (
	"reflect"
	"testing"
)

func TestClassify(t *testing.T) {
	double := func(v any) (any, error) { return v, nil }
	for _, tc := range []struct {
		node any
		want priority
	}{
		{Remove("x"), priRemove},
		{Reject("x"), priReject},
		{Extra(), priExtra},
		{Entire(), priEntire},
		{"literal", priLiteral},
		{42, priLiteral},
		{String, priType},
		{reflect.TypeOf(0), priType},
		{Enum(1, 2), priType},
		{double, priCallable},
		{ValidatorFunc(double), priCallable},
		{map[string]any{}, priCallable},
		{[]any{1}, priCallable},
		{Map{}, priCallable},
	} {
		if got := classify(tc.node); got != tc.want {
			t.Errorf("classify(%T %v) = %d, want %d", tc.node, tc.node, got, tc.want)
		}
	}
}

func TestClassify_MarkerInheritance(t *testing.T) {
	// Required/Optional/Allow inherit the tier of the wrapped key; the
	// override markers carry their own.
	if got := classify(Required("name")); got != priLiteral {
		t.Errorf("Required(literal) = %d", got)
	}
	if got := classify(Optional(String)); got != priType {
		t.Errorf("Optional(type) = %d", got)
	}
	if got := classify(Allow()); got != priCallable {
		t.Errorf("bare Allow() = %d", got)
	}
}

func TestTierOrdering(t *testing.T) {
	// The full dispatch order, strongest first.
	order := []priority{priRemove, priLiteral, priType, priCallable, priReject, priExtra, priEntire}
	for i := 1; i < len(order); i++ {
		if order[i-1] <= order[i] {
			t.Errorf("tier %d is not above tier %d", order[i-1], order[i])
		}
	}
}
