// internal/utils/crypto_test.go
package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderNumber(t *testing.T) {
	number, err := GenerateOrderNumber()
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(number, "ORD-"))

	parts := strings.Split(number, "-")
	assert.Len(t, parts, 3)
	assert.Equal(t, time.Now().Format("20060102"), parts[1])
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}

func TestGenerateOrderNumberUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := GenerateOrderNumber()
		assert.NoError(t, err)
		assert.False(t, seen[number], "duplicate order number: %s", number)
		seen[number] = true
	}
}

func TestGenerateRandomString(t *testing.T) {
	s, err := GenerateRandomString(16)
	assert.NoError(t, err)
	assert.Len(t, s, 16)

	other, err := GenerateRandomString(16)
	assert.NoError(t, err)
	assert.NotEqual(t, s, other)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple name", "Frida Kahlo", "frida-kahlo"},
		{"extra whitespace", "  Vincent   van Gogh  ", "vincent-van-gogh"},
		{"special characters", "Atelier: Künst & Co.", "atelier-knst-co"},
		{"already slug", "modern-art-gallery", "modern-art-gallery"},
		{"empty input", "", "artist"},
		{"only symbols", "!@#$%", "artist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}
