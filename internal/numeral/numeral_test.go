package numeral

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToBases(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Result
	}{
		{
			name:  "zero",
			value: "0",
			want:  Result{Decimal: "0", Binary: "0", Octal: "0", Hexadecimal: "0"},
		},
		{
			name:  "small positive",
			value: "10",
			want:  Result{Decimal: "10", Binary: "1010", Octal: "12", Hexadecimal: "A"},
		},
		{
			name:  "negative",
			value: "-42",
			want:  Result{Decimal: "-42", Binary: "-101010", Octal: "-52", Hexadecimal: "-2A"},
		},
		{
			name:  "uppercase hex digits",
			value: "255",
			want:  Result{Decimal: "255", Binary: "11111111", Octal: "377", Hexadecimal: "FF"},
		},
		{
			name:  "beyond 64 bits",
			value: "18446744073709551616", // 2^64
			want: Result{
				Decimal:     "18446744073709551616",
				Binary:      "1" + zeros(64),
				Octal:       "2000000000000000000000",
				Hexadecimal: "1" + zeros(16),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := new(big.Int).SetString(tt.value, 10)
			require.True(t, ok)
			assert.Equal(t, tt.want, ConvertToBases(v))
		})
	}
}

// TestConvertToBases_RoundTrip verifies that each rendered field parses
// back to the original value in its base.
func TestConvertToBases_RoundTrip(t *testing.T) {
	values := []string{"0", "1", "-1", "61", "127", "-4095", "987654321987654321", "-340282366920938463463374607431768211455"}
	for _, s := range values {
		v, ok := new(big.Int).SetString(s, 10)
		require.True(t, ok)

		res := ConvertToBases(v)
		assert.Equal(t, v.String(), res.Decimal)

		for base, text := range map[int]string{2: res.Binary, 8: res.Octal, 16: res.Hexadecimal} {
			parsed, ok := new(big.Int).SetString(text, base)
			require.True(t, ok, "value %s base %d rendered as %q", s, base, text)
			assert.Zero(t, parsed.Cmp(v), "value %s base %d rendered as %q", s, base, text)
		}
	}
}

func zeros(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}
