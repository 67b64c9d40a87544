package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError(EntityClient, 7)

	assert.Equal(t, "client not found: 7", err.Error())
	assert.True(t, IsNotFound(err))
	assert.False(t, IsValidation(err))
	assert.False(t, IsFormat(err))
	assert.Equal(t, "No client with id 7.", UserMessage(err))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(KindInvalidPhoneNumber, "phone_number", "Phone number must be 9 digits.", "123")

	assert.Equal(t, "validation error for field 'phone_number': Phone number must be 9 digits.", err.Error())
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Phone number must be 9 digits.", UserMessage(err))

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindInvalidPhoneNumber, kind)
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      *FormatError
		expected string
		message  string
	}{
		{
			name:     "date",
			err:      NewFormatError(KindInvalidDate, "date", "01/01/2023"),
			expected: "YYYY-MM-DD",
			message:  "Invalid date format. Correct format is YYYY-MM-DD.",
		},
		{
			name:     "time",
			err:      NewFormatError(KindInvalidTime, "time", "1234"),
			expected: "HH:mm",
			message:  "Invalid time format. Correct format is HH:mm.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, IsFormat(tt.err))
			assert.Equal(t, tt.expected, tt.err.Expected())
			assert.Equal(t, tt.message, UserMessage(tt.err))
			assert.Contains(t, tt.err.Error(), tt.err.RawInput)
		})
	}
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("edit task: %w", NewFormatError(KindInvalidTime, "time", "25:61"))

	assert.True(t, IsFormat(wrapped))
	kind, ok := KindOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, KindInvalidTime, kind)
	assert.Equal(t, "Invalid time format. Correct format is HH:mm.", UserMessage(wrapped))
}

func TestUserMessageFallback(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))

	_, ok := KindOf(errors.New("boom"))
	assert.False(t, ok)
}
