package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/existflow/tutordesk/internal/errors"
)

func TestPhoneNumber(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
	}{
		{"nine digits", "123456789", false},
		{"another nine digits", "987654321", false},
		{"empty means no phone", "", false},
		{"too short", "12345", true},
		{"six digits", "123456", true},
		{"letters", "abc123456", true},
		{"mixed garbage", "1234sdfxzasd", true},
		{"dashes", "123-456-789", true},
		{"single space", " ", true},
		{"plus sign", "+12345678", true},
		{"ten digits", "1234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PhoneNumber(tt.input)
			if !tt.expectError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			kind, _ := apperrors.KindOf(err)
			assert.Equal(t, apperrors.KindInvalidPhoneNumber, kind)
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errKind apperrors.Kind
	}{
		{"valid", "ValidName", ""},
		{"valid short", "Ala", ""},
		{"valid non-ascii", "Łukasz", ""},
		{"empty", "", apperrors.KindEmptyName},
		{"tab", "\t", apperrors.KindEmptyName},
		{"newline", "\n", apperrors.KindEmptyName},
		{"lowercase", "lowercase", apperrors.KindNameNotCapitalized},
		{"leading space", " leadingSpace", apperrors.KindNameNotCapitalized},
		{"leading digit", "1Invalid", apperrors.KindNameNotCapitalized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Name(FieldParentName, tt.input)
			if tt.errKind == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			kind, ok := apperrors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.errKind, kind)
		})
	}
}

func TestNameMessageUsesFieldLabel(t *testing.T) {
	err := Name(FieldStudentName, "asd")
	require.Error(t, err)
	assert.Equal(t, "Student name must start with a capital letter.", apperrors.UserMessage(err))

	err = Name(FieldParentName, "")
	require.Error(t, err)
	assert.Equal(t, "Parent name cannot be empty.", apperrors.UserMessage(err))
}

func TestSubject(t *testing.T) {
	for _, ok := range []string{"Math", "Science", "History", "Art"} {
		assert.NoError(t, Subject(ok), ok)
	}
	for _, bad := range []string{"", "   ", "\t", "\n"} {
		err := Subject(bad)
		require.Error(t, err, "%q", bad)
		kind, _ := apperrors.KindOf(err)
		assert.Equal(t, apperrors.KindEmptySubject, kind)
	}
}

func TestParseDate(t *testing.T) {
	valid := map[string]time.Time{
		"2023-01-01": time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		"2024-12-31": time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		"2000-02-29": time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range valid {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	for _, bad := range []string{"", " ", "2023-13-01", "2023-02-32", "2023-02-30", "2023-02-29", "invalid-date", "01/01/2023", "2024-1-05", "2024-12-31 "} {
		_, err := ParseDate(bad)
		require.Error(t, err, "%q", bad)
		assert.True(t, apperrors.IsFormat(err), "%q", bad)
		kind, _ := apperrors.KindOf(err)
		assert.Equal(t, apperrors.KindInvalidDate, kind)
	}
}

func TestParseTime(t *testing.T) {
	for _, in := range []string{"12:00", "00:00", "23:59", "08:30"} {
		_, err := ParseTime(in)
		assert.NoError(t, err, in)
	}

	got, err := ParseTime("08:30")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Hour())
	assert.Equal(t, 30, got.Minute())

	for _, bad := range []string{"", " ", "25:61", "24:00", "12:60", "invalid-time", "1234", "12-00", "8:30"} {
		_, err := ParseTime(bad)
		require.Error(t, err, "%q", bad)
		kind, _ := apperrors.KindOf(err)
		assert.Equal(t, apperrors.KindInvalidTime, kind, "%q", bad)
	}
}

func TestClientID(t *testing.T) {
	id, err := ClientID(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, id)

	for _, bad := range []string{"", "abc", "-1", "1.5", "two"} {
		_, err := ClientID(bad)
		require.Error(t, err, "%q", bad)
		assert.True(t, apperrors.IsValidation(err), "%q", bad)
		assert.Equal(t, "Client id must be a number.", apperrors.UserMessage(err))
	}
}
