// Package errors defines the failure vocabulary of the registry. Typed
// errors carry the identifiers needed for good messages; sentinel
// matching via errors.Is lets callers branch on the kind of failure
// without knowing the concrete type.
package errors

import (
	"errors"
	"fmt"
)

// New is re-exported so callers need not import both this package and
// the standard library's.
var New = errors.New

// Sentinels. Each typed error below matches exactly one of these.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrUnknownCollection = errors.New("unknown collection")
	ErrInvalidInput      = errors.New("invalid input")
	ErrReadOnly          = errors.New("read only")
)

// IsNotFound reports whether err means a missing record.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAlreadyExists reports whether err means a duplicate registration.
func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }

// IsUnknownCollection reports whether err references an unregistered
// collection. Deliberately distinct from IsNotFound: the two failures
// are handled differently at registration time.
func IsUnknownCollection(err error) bool { return errors.Is(err, ErrUnknownCollection) }

// IsValidationError reports whether err means rejected input.
func IsValidationError(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsReadOnly reports whether err means a write against a frozen registry.
func IsReadOnly(err error) bool { return errors.Is(err, ErrReadOnly) }

// NotFoundError: a lookup missed.
type NotFoundError struct {
	Resource string
	ID       string
}

func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// DuplicateError: a registration hit an ID that is already taken. The
// prior entry is left untouched by the failed attempt.
type DuplicateError struct {
	Resource string
	ID       string
}

func NewDuplicateError(resource, id string) *DuplicateError {
	return &DuplicateError{Resource: resource, ID: id}
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with ID %s already exists", e.Resource, e.ID)
}

func (e *DuplicateError) Is(target error) bool { return target == ErrAlreadyExists }

// UnknownCollectionError: a record named a collection that was never
// added, or a listing asked for one.
type UnknownCollectionError struct {
	Name string
}

func NewUnknownCollectionError(name string) *UnknownCollectionError {
	return &UnknownCollectionError{Name: name}
}

func (e *UnknownCollectionError) Error() string {
	return fmt.Sprintf("collection %s is not registered", e.Name)
}

func (e *UnknownCollectionError) Is(target error) bool { return target == ErrUnknownCollection }

// ValidationError: input rejected before it reached the registry.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// ParseError: a catalog file could not be decoded. Format names the
// syntax (yaml, markdown), File the offending path.
type ParseError struct {
	Format  string
	File    string
	Message string
	Err     error
}

func NewParseError(format, file, message string, err error) *ParseError {
	return &ParseError{Format: format, File: file, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError: a filesystem operation failed.
type IOError struct {
	Operation string
	Path      string
	Err       error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("IO error during %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ResourceError: a higher-level operation (load, save, register,
// render) failed for a named resource.
type ResourceError struct {
	Operation string
	Resource  string
	ID        string
	Err       error
}

func (e *ResourceError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Resource, e.Err)
	}
	return fmt.Sprintf("failed to %s %s %s: %v", e.Operation, e.Resource, e.ID, e.Err)
}

func (e *ResourceError) Unwrap() error { return e.Err }

// The Wrap helpers pass nil through so call sites can wrap
// unconditionally.

// WrapIO wraps err as an IOError.
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// WrapResource wraps err as a ResourceError.
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return &ResourceError{Operation: operation, Resource: resource, ID: id, Err: err}
}

// WrapParse wraps err as a ParseError.
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
