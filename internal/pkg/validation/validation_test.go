package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("donor@example.com"))
	assert.True(t, IsValidEmail("first.last+tag@sub.example.org"))
	assert.False(t, IsValidEmail(""))
	assert.False(t, IsValidEmail("no-at-sign"))
	assert.False(t, IsValidEmail("spaces in@example.com"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("Str0ng!pass"))
	assert.False(t, IsValidPassword("short1!"))
	assert.False(t, IsValidPassword("lettersonly!"))
	assert.False(t, IsValidPassword("n0specials"))
	assert.False(t, IsValidPassword("12345678!"))
}

func TestIsPositiveAmount(t *testing.T) {
	assert.True(t, IsPositiveAmount(0.01))
	assert.False(t, IsPositiveAmount(0))
	assert.False(t, IsPositiveAmount(-5))
}
