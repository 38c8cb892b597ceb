package schema

import (
	"errors"
	"fmt"
)

// Kind tags the constraint a ValidationError reports.
type Kind string

const (
	KindTypeMismatch Kind = "type_mismatch"
	KindRequired     Kind = "required"
	KindMaxLength    Kind = "max_length"
	KindRange        Kind = "range"
)

var (
	// ErrTypeMismatch matches errors for values of the wrong runtime type.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrRequired matches errors for nil values on required fields.
	ErrRequired = errors.New("required value missing")
	// ErrMaxLength matches errors for strings longer than their limit.
	ErrMaxLength = errors.New("value too long")
	// ErrRange matches errors for numbers outside their bounds.
	ErrRange = errors.New("value out of range")
	// ErrUnsupportedType is returned when a type name cannot be parsed.
	ErrUnsupportedType = errors.New("unsupported type")
)

var kindSentinels = map[Kind]error{
	KindTypeMismatch: ErrTypeMismatch,
	KindRequired:     ErrRequired,
	KindMaxLength:    ErrMaxLength,
	KindRange:        ErrRange,
}

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Kind    Kind   // Constraint that failed
	Key     string // Field name, filled in by the record layer
	Message string // Human-readable reason, possibly overridden by the field
	Value   any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Key == "" {
		return e.Message
	}
	return fmt.Sprintf("field %q: %s", e.Key, e.Message)
}

// Is matches the sentinel error of the failure kind.
func (e *ValidationError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && sentinel == target
}

// WithKey returns a copy of e attributed to the named field.
func (e *ValidationError) WithKey(key string) *ValidationError {
	c := *e
	c.Key = key
	return &c
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes the wrapped failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

// Message returns the human-readable part of err: the Message of a
// ValidationError, or err.Error() for anything else.
func Message(err error) string {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return err.Error()
}

// KindOf returns the failure kind of err, or "" when err is not a
// ValidationError.
func KindOf(err error) Kind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ""
}
