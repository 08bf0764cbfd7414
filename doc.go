// Package good provides:
//
// - Declarative validation: a schema built from Go literals, types, callables,
//   sequences and mappings compiles into a single reusable validator
// - A stable error model via Invalid/MultipleInvalid (path, expected, provided)
// - Markers (Required, Optional, Remove, Reject, Allow, Extra, Entire) that
//   hook into mapping validation without being hardcoded into the engine
// - Group validators (Inclusive, Exclusive) for cross-field constraints
//
// Design policy:
// - Keep only public APIs in the root package; leaf validators live under validators/.
// - Compilation is the only amortized work: a compiled *Schema is immutable
//   and safe for concurrent use.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := good.Must(good.Map{
//	    {Key: "name", Value: good.String},
//	    {Key: good.Optional("age"), Value: good.Int},
//	})
//	v, err := s.Validate(map[string]any{"name": "Alex"})
package good
