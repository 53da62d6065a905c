// internal/utils/slug_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Rose Symphony Absolute", "rose-symphony-absolute"},
		{"  Black Oud Royale  ", "black-oud-royale"},
		{"Attar & Co. No.5", "attar-co-no-5"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.input))
	}
}
