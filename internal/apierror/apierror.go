// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
//
// The error taxonomy is deliberately small: validation failures (rejected
// input, nothing persisted), not-found (unknown id referenced by a command)
// and everything else. There are no transient failures in the core — the same
// inputs always produce the same outcome.
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FieldsError wraps multiple field-level validation errors.
type FieldsError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewFields(fields map[string]string) *FieldsError {
	return &FieldsError{Detail: "validation failed", Fields: fields}
}

// ValidationError marks an error as a rejected-input failure. The operation
// had no side effect.
type ValidationError struct{ msg string }

func Validation(msg string) error           { return &ValidationError{msg: msg} }
func (e *ValidationError) Error() string    { return e.msg }
func IsValidation(err error) bool           { var v *ValidationError; return errors.As(err, &v) }

// NotFoundError marks an error caused by an unknown entity id; the operation
// was aborted.
type NotFoundError struct{ msg string }

func NotFound(msg string) error          { return &NotFoundError{msg: msg} }
func (e *NotFoundError) Error() string   { return e.msg }
func IsNotFound(err error) bool          { var v *NotFoundError; return errors.As(err, &v) }
