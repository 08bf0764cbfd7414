package good

import "errors"

// undefinedType is the type of the Undefined placeholder. Being unexported,
// no user-supplied input can ever collide with it.
type undefinedType struct{}

func (undefinedType) String() string { return "Undefined" }

// Undefined is the reserved "missing value" placeholder, distinct from any
// real input including nil. A value schema that accepts Undefined without
// error declares default behavior: the engine feeds it Undefined to
// synthesize values for absent Required keys.
var Undefined undefinedType

// ErrRemoveValue is the drop signal: a validator returns it to declare that
// the matched key or element must be omitted from the sanitized output
// entirely. It is a non-error outcome, distinct from validation failure, and
// is detected with errors.Is.
var ErrRemoveValue = errors.New("good: remove value")
