// Package validators is the catalog of pre-built leaf validators. Each one
// is just a good.Validator: called with a value, it returns the sanitized
// result or fails with a validation error.
//
// Constructors that compile sub-schemas (Any, All, Maybe) or expressions
// (Match, Expr) panic with the compilation error when given a malformed
// argument, mirroring good.Must: validators are meant to be declared at
// program start, inside schema literals.
package validators
