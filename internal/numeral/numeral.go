// Package numeral converts integers between numeral bases and infers
// the most likely base of ambiguous numeric literals.
package numeral

import (
	"math/big"
	"strings"
)

// Base identifies one of the four supported numeral bases.
type Base int

// Supported bases.
const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// String returns the lowercase English name of the base.
func (b Base) String() string {
	switch b {
	case Binary:
		return "binary"
	case Octal:
		return "octal"
	case Decimal:
		return "decimal"
	case Hexadecimal:
		return "hexadecimal"
	default:
		return "unknown"
	}
}

// Result holds one integer rendered in all four supported bases.
// Every field shares the sign of the source value and carries no base
// prefix; hexadecimal digits are uppercase.
type Result struct {
	Decimal     string `json:"decimal"`
	Binary      string `json:"binary"`
	Octal       string `json:"octal"`
	Hexadecimal string `json:"hexadecimal"`
}

// ConvertToBases renders v in decimal, binary, octal and hexadecimal.
// Zero renders as "0" in every base; negative values carry a single
// leading minus sign followed by the unsigned magnitude's digits.
func ConvertToBases(v *big.Int) Result {
	abs := new(big.Int).Abs(v)
	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}
	return Result{
		Decimal:     v.String(),
		Binary:      sign + abs.Text(2),
		Octal:       sign + abs.Text(8),
		Hexadecimal: sign + strings.ToUpper(abs.Text(16)),
	}
}
