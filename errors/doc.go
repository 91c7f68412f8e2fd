// Package errors provides structured error types for the sides bridge.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending handle, type names, source line and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseHost, errors.KindInvalidHandle).
//		Handle(h).
//		GoType("*reference.Thing").
//		Detail("handle is not live").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidHandle(errors.PhaseDispatch, h)
//	err := errors.Syntax(12, "expected %q", "{")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
