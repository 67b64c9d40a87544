package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"Zażółć gęślą", 8, "Zażół..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, truncate(tt.in, tt.max))
		})
	}
}

func TestWrapIndex(t *testing.T) {
	assert.Equal(t, 0, wrapIndex(3, 3))
	assert.Equal(t, 2, wrapIndex(-1, 3))
	assert.Equal(t, 1, wrapIndex(1, 3))
	assert.Equal(t, 0, wrapIndex(5, 0))
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "two lines here", oneLine("two lines\n  here"))
}
