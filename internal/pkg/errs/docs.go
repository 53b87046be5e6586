// Package errs provides standardized error types for the logistics engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is support
//
// The engine has no fatal error class: lookups that find nothing return an
// ObjectNotFoundError and callers branch on absence rather than aborting.
package errs
