package util

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestFormatZipcode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"hyphen", "18020-000", "18020000"},
		{"spaces", " 18020 000 ", "18020000"},
		{"letters", "18a020b000", "18020000"},
		{"punctuation", "18.020-000", "18020000"},
		{"already formatted", "18020000", "18020000"},
		{"no digits", "abc---", ""},
		{"empty", "", ""},
		{"non ascii digits", "١٢٣18020000", "18020000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatZipcode(tt.input))
		})
	}
}

func TestIsValidZipcode(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"18020000", true},
		{"00000000", true},
		{"1802000", false},
		{"180200000", false},
		{"18020abc", false},
		{"18020-00", false},
		{"18020-000", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidZipcode(tt.input))
		})
	}
}

func TestIsEmailValid(t *testing.T) {
	assert.True(t, IsEmailValid("teste@example.com"))
	assert.True(t, IsEmailValid("first.last+tag@sub.example.com.br"))

	assert.False(t, IsEmailValid("invalido"))
	assert.False(t, IsEmailValid("sem-arroba.com"))
	assert.False(t, IsEmailValid("com@espaco .com"))
	assert.False(t, IsEmailValid(" teste@example.com"))
	assert.False(t, IsEmailValid("teste@example.com\n"))
	assert.False(t, IsEmailValid("a@b@c.com"))
	assert.False(t, IsEmailValid("teste@example"))
	assert.False(t, IsEmailValid(""))
}

func TestFormatZipcode_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("formatting is idempotent", prop.ForAll(
		func(s string) bool {
			once := FormatZipcode(s)
			return FormatZipcode(once) == once
		},
		gen.AnyString(),
	))

	properties.Property("output holds only digits", prop.ForAll(
		func(s string) bool {
			return strings.Trim(FormatZipcode(s), "0123456789") == ""
		},
		gen.AnyString(),
	))

	properties.Property("formatted input is valid iff it has 8 digits", prop.ForAll(
		func(s string) bool {
			f := FormatZipcode(s)
			return IsValidZipcode(f) == (len(f) == 8)
		},
		gen.AnyString(),
	))

	properties.Property("8 digit strings survive formatting with separators", prop.ForAll(
		func(digits string, sep string) bool {
			raw := digits[:5] + sep + digits[5:]
			return FormatZipcode(raw) == digits && IsValidZipcode(FormatZipcode(raw))
		},
		gen.SliceOfN(8, gen.NumChar()).Map(func(r []rune) string { return string(r) }),
		gen.OneConstOf("-", " ", ".", ""),
	))

	properties.TestingRun(t)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"7d", "168h0m0s"},
		{"30", "30s"},
		{"5s", "5s"},
		{"1m", "1m0s"},
	}
	for _, tt := range tests {
		d, err := ParseDuration(tt.input)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, d.String())
	}

	_, err := ParseDuration("xd")
	assert.Error(t, err)
}
