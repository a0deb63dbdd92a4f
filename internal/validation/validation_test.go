package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("jane@example.com"))
	assert.NoError(t, ValidateEmail("jane+tag@sub.example.co.uk"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@domain@double.com"))
	assert.Error(t, ValidateEmail(strings.Repeat("a", 250)+"@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("correct horse battery"))

	assert.Error(t, ValidatePassword("short"), "below minimum length")
	assert.Error(t, ValidatePassword(strings.Repeat("x", 73)), "above bcrypt limit")
	assert.Error(t, ValidatePassword("mypassword123456"), "contains common pattern")
	assert.Error(t, ValidatePassword("QWERTYQWERTYQWERTY"), "common pattern is case insensitive")
}

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Jane Doe"))
	assert.NoError(t, ValidateName("  Jane  "), "surrounding whitespace is trimmed")

	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("n", 101)))
}

func TestValidateMobile(t *testing.T) {
	assert.NoError(t, ValidateMobile("555-0100-12"))
	assert.NoError(t, ValidateMobile("+1 (555) 010-0123"))

	assert.Error(t, ValidateMobile(""))
	assert.Error(t, ValidateMobile("call me maybe"))
	assert.Error(t, ValidateMobile("123456"), "too few digits")
	assert.Error(t, ValidateMobile("1234567890123456"), "too many digits")
}

func TestParseAge(t *testing.T) {
	age, err := ParseAge("34")
	require.NoError(t, err)
	assert.Equal(t, 34, age)

	_, err = ParseAge("")
	assert.Error(t, err)

	_, err = ParseAge("abc")
	assert.Error(t, err)

	_, err = ParseAge("-1")
	assert.Error(t, err)

	_, err = ParseAge("151")
	assert.Error(t, err)
}
