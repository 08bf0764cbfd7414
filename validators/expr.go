package validators

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	good "github.com/kolypto/go-good"
	"github.com/kolypto/go-good/i18n"
)

type exprValidator struct {
	name string
	prog *vm.Program
}

// Expr compiles an expression into a leaf validator. The input value is
// bound to "v". A boolean expression acts as a predicate; any other result
// replaces the value:
//
//	validators.Expr("v > 3")       // predicate
//	validators.Expr("upper(v)")    // transform
//
// A malformed expression panics with the compilation error.
func Expr(src string) good.Validator {
	prog, err := expr.Compile(src)
	if err != nil {
		panic(&good.SchemaError{Message: err.Error(), Schema: src})
	}
	return &exprValidator{name: "Expr(" + src + ")", prog: prog}
}

func (e *exprValidator) Name() string { return e.name }

func (e *exprValidator) Validate(v any) (any, error) {
	out, err := expr.Run(e.prog, map[string]any{"v": v})
	if err != nil {
		return nil, &good.Invalid{Message: err.Error(), Expected: e.name, Provided: good.LiteralName(v), Validator: e}
	}
	if ok, isBool := out.(bool); isBool {
		if !ok {
			return nil, &good.Invalid{Message: i18n.T("invalid_value", nil), Expected: e.name, Provided: good.LiteralName(v), Validator: e}
		}
		return v, nil
	}
	return out, nil
}
