// Package errors provides custom error types for the toolshelf system.
// These errors enable programmatic error checking with errors.Is/errors.As
// and carry enough context (record name, marker text, file path) to fix the input.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the toolshelf system
var (
	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedInput indicates the catalog is not a JSON array of record objects
	ErrMalformedInput = errors.New("malformed input")

	// ErrMissingField indicates a record lacks a field required for the current step
	ErrMissingField = errors.New("missing required field")

	// ErrUnsupportedSortKey indicates a sort was requested on a key that is not supported
	ErrUnsupportedSortKey = errors.New("unsupported sort key")

	// ErrInvalidSortOrder indicates a sort order token other than asc/desc
	ErrInvalidSortOrder = errors.New("invalid sort order")

	// ErrMarkersNotFound indicates the target document lacks the expected delimiters
	ErrMarkersNotFound = errors.New("markers not found")
)

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// MissingHomeLinkError is returned when a record is rendered without a "home" link.
type MissingHomeLinkError struct {
	Record string
}

// Error implements the error interface
func (e *MissingHomeLinkError) Error() string {
	return fmt.Sprintf("record %q has no home link", e.Record)
}

// Is implements errors.Is support
func (e *MissingHomeLinkError) Is(target error) bool {
	return target == ErrMissingField
}

// NewMissingHomeLinkError creates a new MissingHomeLinkError
func NewMissingHomeLinkError(record string) *MissingHomeLinkError {
	return &MissingHomeLinkError{Record: record}
}

// UnsupportedSortKeyError is returned for sort keys outside the supported set.
type UnsupportedSortKeyError struct {
	Key       string
	Supported []string
}

// Error implements the error interface
func (e *UnsupportedSortKeyError) Error() string {
	return fmt.Sprintf("unsupported sort key %q (supported: %v)", e.Key, e.Supported)
}

// Is implements errors.Is support
func (e *UnsupportedSortKeyError) Is(target error) bool {
	return target == ErrUnsupportedSortKey
}

// NewUnsupportedSortKeyError creates a new UnsupportedSortKeyError
func NewUnsupportedSortKeyError(key string, supported ...string) *UnsupportedSortKeyError {
	return &UnsupportedSortKeyError{Key: key, Supported: supported}
}

// InvalidSortOrderError is returned for order tokens other than asc/desc.
type InvalidSortOrderError struct {
	Order string
}

// Error implements the error interface
func (e *InvalidSortOrderError) Error() string {
	return fmt.Sprintf("invalid sort order %q: must be asc or desc", e.Order)
}

// Is implements errors.Is support
func (e *InvalidSortOrderError) Is(target error) bool {
	return target == ErrInvalidSortOrder
}

// NewInvalidSortOrderError creates a new InvalidSortOrderError
func NewInvalidSortOrderError(order string) *InvalidSortOrderError {
	return &InvalidSortOrderError{Order: order}
}

// MarkersNotFoundError is returned when a document lacks the start or end marker.
type MarkersNotFoundError struct {
	Start   string
	End     string
	Missing string // the marker that could not be located
}

// Error implements the error interface
func (e *MarkersNotFoundError) Error() string {
	if e.Missing != "" {
		return fmt.Sprintf("markers not found: missing %q (expected %q ... %q)", e.Missing, e.Start, e.End)
	}
	return fmt.Sprintf("markers not found: expected %q ... %q", e.Start, e.End)
}

// Is implements errors.Is support
func (e *MarkersNotFoundError) Is(target error) bool {
	return target == ErrMarkersNotFound
}

// NewMarkersNotFoundError creates a new MarkersNotFoundError
func NewMarkersNotFoundError(start, end, missing string) *MarkersNotFoundError {
	return &MarkersNotFoundError{Start: start, End: end, Missing: missing}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json", "yaml", etc.
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support. Parse errors are always malformed input.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedInput
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "rename"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// ResourceError represents an error during resource operations
type ResourceError struct {
	Operation string // "load", "save", "render"
	Resource  string // "catalog", "document", "config"
	ID        string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ResourceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("failed to %s %s %s: %s", e.Operation, e.Resource, e.ID, e.Message)
	}
	return fmt.Sprintf("failed to %s %s: %s", e.Operation, e.Resource, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ResourceError) Unwrap() error {
	return e.Err
}

// NewResourceError creates a new ResourceError
func NewResourceError(operation, resource, id string, err error) *ResourceError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ResourceError{
		Operation: operation,
		Resource:  resource,
		ID:        id,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMalformedInput checks if an error reports an unparseable catalog
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}

// IsMissingField checks if an error reports a missing required field
func IsMissingField(err error) bool {
	return errors.Is(err, ErrMissingField)
}

// IsMarkersNotFound checks if an error reports absent document markers
func IsMarkersNotFound(err error) bool {
	return errors.Is(err, ErrMarkersNotFound)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapResource wraps an error as a ResourceError
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	return NewResourceError(operation, resource, id, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}
