package errs

import (
	"fmt"
	"strings"
)

// Sentinel errors used as the Unwrap target of every typed error in this package.
// Callers classify failures with errors.Is against these values.
var (
	ErrValueIsRequired   = fmt.Errorf("value is required")
	ErrValueIsInvalid    = fmt.Errorf("value is invalid")
	ErrValueIsOutOfRange = fmt.Errorf("value is out of range")
	ErrObjectNotFound    = fmt.Errorf("object not found")
)

// sanitize strips newlines from interpolated values so a single error always
// renders as a single log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value was missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError carrying the underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("value is required: %s", sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value was present but failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError carrying the underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value fell outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the named parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError carrying the underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s is %s, min value is %s, max value is %s (cause: %s)",
			sanitize(e.Value), sanitize(e.ParamName), sanitize(e.Min), sanitize(e.Max), sanitize(e.Cause))
	}
	return fmt.Sprintf("value is invalid: %s is %s, min value is %s, max value is %s",
		sanitize(e.Value), sanitize(e.ParamName), sanitize(e.Min), sanitize(e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a lookup found no matching object.
// Absence is an expected outcome for the engine, not a fault: callers branch
// on it with errors.Is(err, ErrObjectNotFound).
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError carrying the underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("object not found: param is: %s, ID is: %s (cause: %s)",
			sanitize(e.ParamName), sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("object not found: %s", fmt.Sprintf("%s", e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}
