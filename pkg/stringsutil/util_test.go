package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"cut", "hello world", 5, "hello"},
		{"zero max", "hello", 0, ""},
		{"multibyte safe", "héllo wörld", 7, "héllo w"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.max))
		})
	}
}

func TestTruncateEllipsis(t *testing.T) {
	assert.Equal(t, "hel...", TruncateEllipsis("hello", 3))
	assert.Equal(t, "hello", TruncateEllipsis("hello", 5))
}

func TestNormalizeSpace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeSpace("  a\t b \n c "))
}

func TestRemoveEmptyStrings(t *testing.T) {
	got := RemoveEmptyStrings([]string{"a", "", "b", ""})
	assert.Equal(t, []string{"a", "b"}, got)
}
