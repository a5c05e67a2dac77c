// Package apperrors defines the tagged error types raised by the service
// layer and translated to problem documents at the HTTP boundary.
package apperrors

import "fmt"

// Violation is one validation failure. Field is the JSON field name for
// field-level violations, or a request-scope name (e.g. "productRequest")
// for cross-field rules. MessageKey is resolved against the message catalog
// when the response is rendered.
type Violation struct {
	Field        string
	MessageKey   string
	InvalidValue interface{}
}

// ValidationError reports one or more constraint violations on a request.
// Field-level violations always precede request-scope ones.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d violation(s)", len(e.Violations))
}

// MalformedRequestError reports parameters or bodies that could not be
// parsed into their expected types.
type MalformedRequestError struct {
	Violations []Violation
}

func (e *MalformedRequestError) Error() string {
	return "malformed request"
}

// NotFoundError reports a lookup by an unknown public id.
type NotFoundError struct {
	PublicID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product with public id %s not found", e.PublicID)
}

// AlreadyExistsError reports a name-uniqueness conflict.
type AlreadyExistsError struct {
	Name string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("product with name %q already exists", e.Name)
}

// ConstraintError reports a storage-level constraint violation, typically a
// uniqueness race that slipped past the service pre-check. The wrapped cause
// is logged server-side but never exposed to clients.
type ConstraintError struct {
	Err error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("storage constraint violated: %v", e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}
