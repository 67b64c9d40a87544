package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/existflow/tutordesk/internal/errors"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient("Maciek", "Szymon", "123456789", "good student")
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	c := newTestClient(t)

	assert.Equal(t, 0, c.ID())
	assert.Equal(t, "Maciek", c.StudentName())
	assert.Equal(t, "Szymon", c.ParentName())
	assert.Equal(t, "123456789", c.PhoneNumber())
	assert.Equal(t, "good student", c.Description())
	assert.True(t, c.HasPhoneNumber())
}

func TestNewClient_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		student string
		parent  string
		phone   string
		kind    apperrors.Kind
	}{
		{"empty student", "", "Szymon", "", apperrors.KindEmptyName},
		{"lowercase student", "maciek", "Szymon", "", apperrors.KindNameNotCapitalized},
		{"empty parent", "Maciek", "  ", "", apperrors.KindEmptyName},
		{"bad phone", "Maciek", "Szymon", "12345", apperrors.KindInvalidPhoneNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.student, tt.parent, tt.phone, "")
			require.Error(t, err)
			assert.Nil(t, c)
			kind, ok := apperrors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

func TestClient_SetPhoneNumber(t *testing.T) {
	for _, phone := range []string{"123123123", "987654321", "555666777", ""} {
		t.Run("valid "+phone, func(t *testing.T) {
			c := newTestClient(t)
			require.NoError(t, c.SetPhoneNumber(phone))
			assert.Equal(t, phone, c.PhoneNumber())
		})
	}

	for _, phone := range []string{"1234sdfxzasd", "abcd1234", " ", "123-456-789", "123456", "12345", "abc123456"} {
		t.Run("invalid "+phone, func(t *testing.T) {
			c := newTestClient(t)
			err := c.SetPhoneNumber(phone)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, "123456789", c.PhoneNumber(), "rejected value must not be applied")
		})
	}
}

func TestClient_SetNames(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.SetParentName("AnotherValidName"))
	assert.Equal(t, "AnotherValidName", c.ParentName())

	for _, bad := range []string{"", "lowercase", " leadingSpace", "\t", "\n", "1Invalid", "name"} {
		assert.Error(t, c.SetParentName(bad), "%q", bad)
		assert.Error(t, c.SetStudentName(bad), "%q", bad)
	}
	assert.Equal(t, "AnotherValidName", c.ParentName())
	assert.Equal(t, "Maciek", c.StudentName())
}

func TestClient_String(t *testing.T) {
	u := NewUser()
	c := newTestClient(t)
	u.AddClient(c)
	assert.Equal(t, "1. Maciek", c.String())
}
