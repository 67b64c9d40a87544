// Package validation implements the field rules of client and task records.
// Rules are expressed as validator tags and translated into the typed errors
// of the errors package.
package validation

import (
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/existflow/tutordesk/internal/errors"
)

// Layouts of the external string views of a task's date and time
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// Field names used in error reports
const (
	FieldStudentName = "student_name"
	FieldParentName  = "parent_name"
	FieldPhoneNumber = "phone_number"
	FieldSubject     = "subject"
	FieldDate        = "date"
	FieldTime        = "time"
	FieldClientID    = "client_id"
)

const (
	phoneTag   = "omitempty,len=9,number"
	nameTag    = "required,capitalized"
	subjectTag = "required"
	dateTag    = "required,datetime=" + DateLayout
	timeTag    = "required,len=5,datetime=" + TimeLayout
	idTag      = "required,number"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("capitalized", isCapitalized)
	return v
}

// isCapitalized checks that the first rune is an upper-case letter
func isCapitalized(fl validator.FieldLevel) bool {
	r, _ := utf8.DecodeRuneInString(fl.Field().String())
	return unicode.IsUpper(r)
}

// PhoneNumber accepts an empty value (no phone) or exactly nine digits
func PhoneNumber(value string) error {
	if err := validate.Var(value, phoneTag); err != nil {
		return apperrors.NewValidationError(apperrors.KindInvalidPhoneNumber, FieldPhoneNumber,
			"Phone number must be 9 digits.", value)
	}
	return nil
}

// Name validates a student or parent name: non-blank and starting with an
// upper-case letter.
func Name(field, value string) error {
	label := fieldLabel(field)
	if strings.TrimSpace(value) == "" {
		return apperrors.NewValidationError(apperrors.KindEmptyName, field,
			label+" cannot be empty.", value)
	}
	if err := validate.Var(value, nameTag); err != nil {
		return apperrors.NewValidationError(apperrors.KindNameNotCapitalized, field,
			label+" must start with a capital letter.", value)
	}
	return nil
}

// Subject rejects empty and all-whitespace subjects
func Subject(value string) error {
	if err := validate.Var(strings.TrimSpace(value), subjectTag); err != nil {
		return apperrors.NewValidationError(apperrors.KindEmptySubject, FieldSubject,
			"Subject cannot be empty.", value)
	}
	return nil
}

// ParseDate parses an ISO YYYY-MM-DD date. Impossible calendar dates are
// rejected.
func ParseDate(value string) (time.Time, error) {
	if err := validate.Var(value, dateTag); err != nil {
		return time.Time{}, apperrors.NewFormatError(apperrors.KindInvalidDate, FieldDate, value)
	}
	d, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewFormatError(apperrors.KindInvalidDate, FieldDate, value)
	}
	return d, nil
}

// ParseTime parses a zero-padded 24-hour HH:mm time of day. Only the hour and
// minute of the result are meaningful.
func ParseTime(value string) (time.Time, error) {
	if err := validate.Var(value, timeTag); err != nil {
		return time.Time{}, apperrors.NewFormatError(apperrors.KindInvalidTime, FieldTime, value)
	}
	t, err := time.Parse(TimeLayout, value)
	if err != nil {
		return time.Time{}, apperrors.NewFormatError(apperrors.KindInvalidTime, FieldTime, value)
	}
	return t, nil
}

// ClientID parses a client id typed by the user. It checks the form of the
// value only; whether the client exists is up to the caller.
func ClientID(value string) (int, error) {
	value = strings.TrimSpace(value)
	if err := validate.Var(value, idTag); err != nil {
		return 0, apperrors.NewValidationError(apperrors.KindInvalidClientID, FieldClientID,
			"Client id must be a number.", value)
	}
	id, err := strconv.Atoi(value)
	if err != nil {
		return 0, apperrors.NewValidationError(apperrors.KindInvalidClientID, FieldClientID,
			"Client id must be a number.", value)
	}
	return id, nil
}

func fieldLabel(field string) string {
	switch field {
	case FieldStudentName:
		return "Student name"
	case FieldParentName:
		return "Parent name"
	default:
		return "Name"
	}
}
