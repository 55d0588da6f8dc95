package graphocean

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors for common operations.
var (
	// ErrNotFound is returned when a requested vertex does not exist.
	ErrNotFound = errors.New("graphocean: entity not found")

	// ErrEmptyEntities is returned when a save or lookup receives no entities.
	ErrEmptyEntities = errors.New("graphocean: empty entity list")

	// ErrMissingRole is returned when a label lacks a member role required by
	// the operation, e.g. an edge without a source id member.
	ErrMissingRole = errors.New("graphocean: required member role missing")

	// ErrUnsupportedLabel is returned when a type declares neither a vertex
	// nor an edge schema.
	ErrUnsupportedLabel = errors.New("graphocean: type is not a vertex or edge schema")

	// ErrFormatterNoConstructor is returned when a member names a formatter
	// kind that has no registered constructor.
	ErrFormatterNoConstructor = errors.New("graphocean: FIELD_FORMAT_NO_CONSTRUCTOR")

	// ErrInvalidID is returned when a vertex id cannot be resolved.
	ErrInvalidID = errors.New("graphocean: invalid vertex id")

	// ErrExecute is matched by every ExecuteError.
	ErrExecute = errors.New("graphocean: execute failed")

	// ErrConversion is matched by every ConversionError.
	ErrConversion = errors.New("graphocean: value conversion failed")
)

// NotFoundError represents an error when a vertex is not found.
type NotFoundError struct {
	label string
	id    any // Optional: the ID that was searched for
}

// Error returns the error string.
func (e *NotFoundError) Error() string {
	if e.id != nil {
		return fmt.Sprintf("graphocean: %s not found (id=%v)", e.label, e.id)
	}
	return fmt.Sprintf("graphocean: %s not found", e.label)
}

// Is reports whether the target error matches NotFoundError.
func (e *NotFoundError) Is(err error) bool {
	return err == ErrNotFound
}

// Label returns the label name.
func (e *NotFoundError) Label() string {
	return e.label
}

// ID returns the ID that was searched for, if available.
func (e *NotFoundError) ID() any {
	return e.id
}

// NewNotFoundError returns a new NotFoundError for the given label.
func NewNotFoundError(label string) *NotFoundError {
	return &NotFoundError{label: label}
}

// NewNotFoundErrorWithID returns a new NotFoundError with the ID that was searched for.
func NewNotFoundErrorWithID(label string, id any) *NotFoundError {
	return &NotFoundError{label: label, id: id}
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *NotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrNotFound)
}

// PreconditionError is raised before any statement reaches the store:
// empty inputs, missing member roles, unknown formatter kinds and the like.
type PreconditionError struct {
	Op     string // Operation that was refused (e.g., "save vertices")
	Kind   error  // One of the precondition sentinels
	Detail string // Optional detail
}

// Error returns the error string.
func (e *PreconditionError) Error() string {
	msg := strings.TrimPrefix(e.Kind.Error(), "graphocean: ")
	if e.Detail != "" {
		return fmt.Sprintf("graphocean: %s: %s: %s", e.Op, msg, e.Detail)
	}
	return fmt.Sprintf("graphocean: %s: %s", e.Op, msg)
}

// Is reports whether err is the sentinel kind of this error.
func (e *PreconditionError) Is(err error) bool {
	return err == e.Kind
}

// NewPreconditionError returns a new PreconditionError. The detail is
// formatted with fmt.Sprintf when args are given.
func NewPreconditionError(op string, kind error, detail string, args ...any) *PreconditionError {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &PreconditionError{Op: op, Kind: kind, Detail: detail}
}

// IsPreconditionError returns true if the error is a PreconditionError.
func IsPreconditionError(err error) bool {
	if err == nil {
		return false
	}
	var e *PreconditionError
	return errors.As(err, &e)
}

// ExecuteError reports a statement the store rejected or could not run.
type ExecuteError struct {
	Code      int    // Store error code; -3 for transport failures
	Message   string // Store error message
	Statement string // Statement that failed
	Err       error  // Underlying transport error, if any
}

// Error returns the error string.
func (e *ExecuteError) Error() string {
	if e.Err != nil && e.Message == "" {
		return fmt.Sprintf("graphocean: execute failed (code=%d): %v", e.Code, e.Err)
	}
	return fmt.Sprintf("graphocean: execute failed (code=%d): %s", e.Code, e.Message)
}

// Is reports whether the target error matches ExecuteError.
func (e *ExecuteError) Is(err error) bool {
	return err == ErrExecute
}

// Unwrap returns the underlying error.
func (e *ExecuteError) Unwrap() error {
	return e.Err
}

// NewExecuteError returns a new ExecuteError.
func NewExecuteError(code int, msg, stmt string) *ExecuteError {
	return &ExecuteError{Code: code, Message: msg, Statement: stmt}
}

// IsExecuteError returns true if the error is an ExecuteError.
func IsExecuteError(err error) bool {
	if err == nil {
		return false
	}
	var e *ExecuteError
	return errors.As(err, &e)
}

// ConversionError reports a cell that could not be converted into the
// member type of its property.
type ConversionError struct {
	Property string // Property or member name
	From     string // Source representation
	To       string // Target representation
	Err      error  // Underlying error
}

// Error returns the error string.
func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("graphocean: converting %q from %s to %s: %v", e.Property, e.From, e.To, e.Err)
	}
	return fmt.Sprintf("graphocean: converting %q from %s to %s", e.Property, e.From, e.To)
}

// Is reports whether the target error matches ConversionError.
func (e *ConversionError) Is(err error) bool {
	return err == ErrConversion
}

// Unwrap returns the underlying error.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// NewConversionError returns a new ConversionError.
func NewConversionError(property, from, to string, err error) *ConversionError {
	return &ConversionError{Property: property, From: from, To: to, Err: err}
}

// IsConversionError returns true if the error is a ConversionError.
func IsConversionError(err error) bool {
	if err == nil {
		return false
	}
	var e *ConversionError
	return errors.As(err, &e)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "graphocean: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("graphocean: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
