// Package errors holds the error taxonomy shared by the domain model and the
// presentation layers. Every failure raised by the core is one of
// NotFoundError, ValidationError or FormatError; all of them are recoverable
// by the caller.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies the rule that produced a validation or format failure
type Kind string

const (
	KindInvalidPhoneNumber Kind = "invalid_phone_number"
	KindEmptySubject       Kind = "empty_subject"
	KindEmptyName          Kind = "empty_name"
	KindNameNotCapitalized Kind = "name_not_capitalized"
	KindInvalidClientID    Kind = "invalid_client_id"

	KindInvalidDate Kind = "invalid_date"
	KindInvalidTime Kind = "invalid_time"
)

// Entity names the registry a NotFoundError refers to
type Entity string

const (
	EntityClient Entity = "client"
	EntityTask   Entity = "task"
)

// NotFoundError is returned when an id does not address a record in a registry
type NotFoundError struct {
	Entity Entity
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %d", e.Entity, e.ID)
}

// ValidationError reports a semantically invalid field value
type ValidationError struct {
	Kind    Kind
	Field   string
	Message string
	Value   interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

// FormatError reports a date or time string that could not be parsed
type FormatError struct {
	Kind     Kind
	Field    string
	RawInput string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format for field '%s': %q (expected %s)", e.Field, e.RawInput, e.Expected())
}

// Expected returns the layout the raw input should have followed
func (e *FormatError) Expected() string {
	switch e.Kind {
	case KindInvalidDate:
		return "YYYY-MM-DD"
	case KindInvalidTime:
		return "HH:mm"
	default:
		return "a valid value"
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(entity Entity, id int) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// NewValidationError creates a new validation error
func NewValidationError(kind Kind, field, message string, value interface{}) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: message,
		Value:   value,
	}
}

// NewFormatError creates a new format error
func NewFormatError(kind Kind, field, raw string) *FormatError {
	return &FormatError{Kind: kind, Field: field, RawInput: raw}
}

// IsNotFound reports whether err is, or wraps, a NotFoundError
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsValidation reports whether err is, or wraps, a ValidationError
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsFormat reports whether err is, or wraps, a FormatError
func IsFormat(err error) bool {
	var target *FormatError
	return errors.As(err, &target)
}

// KindOf returns the rule kind carried by a validation or format error.
// The second result is false for any other error.
func KindOf(err error) (Kind, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind, true
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return "", false
}

// UserMessage returns a user-friendly error message
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return fmt.Sprintf("No %s with id %d.", nf.Entity, nf.ID)
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}

	var fe *FormatError
	if errors.As(err, &fe) {
		switch fe.Kind {
		case KindInvalidDate:
			return "Invalid date format. Correct format is YYYY-MM-DD."
		case KindInvalidTime:
			return "Invalid time format. Correct format is HH:mm."
		}
		return fmt.Sprintf("Invalid %s: %q", fe.Field, fe.RawInput)
	}

	return err.Error()
}
