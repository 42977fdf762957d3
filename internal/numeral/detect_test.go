package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		input string
		value string
		base  Base
	}{
		{"binary prefix", "0b1010", "10", Binary},
		{"binary prefix uppercase", "0B1010", "10", Binary},
		{"octal prefix", "0o17", "15", Octal},
		{"hex prefix", "0x1F", "31", Hexadecimal},
		{"hex prefix lowercase digits", "0xff", "255", Hexadecimal},
		{"bare hex letters", "7F", "127", Hexadecimal},
		{"lowercase hex letters", "7f", "127", Hexadecimal},
		{"leading zero octal", "075", "61", Octal},
		{"plain decimal", "42", "42", Decimal},
		{"digit nine forces decimal", "1900", "1900", Decimal},
		{"all zeros and ones is binary", "1010", "10", Binary},
		{"single one is decimal", "1", "1", Decimal},
		{"single zero is decimal", "0", "0", Decimal},
		{"negative decimal", "-42", "-42", Decimal},
		{"positive sign", "+42", "42", Decimal},
		{"negative hex prefix", "-0x10", "-16", Hexadecimal},
		{"underscore separators", "1_000_000", "1000000", Decimal},
		{"underscores in binary", "0b1010_1010", "170", Binary},
		{"whitespace trimmed", "  42  ", "42", Decimal},
		{"zeros and ones without leading zero", "110", "6", Binary},
		{"octal digits without leading zero", "127", "127", Decimal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, base, err := Detect(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.base, base)
			assert.Equal(t, tt.value, value.String())
		})
	}
}

func TestDetect_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmptyInput},
		{"whitespace only", "   ", ErrEmptyInput},
		{"sign only", "-", ErrEmptyBody},
		{"underscores only", "___", ErrEmptyBody},
		{"prefix only", "0x", ErrEmptyBody},
		{"binary prefix with decimal digit", "0b102", ErrMalformedNumeral},
		{"octal prefix with nine", "0o19", ErrMalformedNumeral},
		{"hex letters beyond F", "7G", ErrMalformedNumeral},
		{"stray punctuation", "12.5", ErrMalformedNumeral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Detect(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
