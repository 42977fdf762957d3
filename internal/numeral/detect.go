package numeral

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Detection errors. All are recoverable input errors; callers should
// surface them as "fix your input" rather than failing hard.
var (
	// ErrEmptyInput is returned when the input is blank after trimming.
	ErrEmptyInput = errors.New("empty input")
	// ErrEmptyBody is returned when no digits remain after the sign,
	// separators and base prefix are stripped.
	ErrEmptyBody = errors.New("no digits after prefix")
	// ErrMalformedNumeral is returned when the body contains a character
	// that is invalid for the detected base.
	ErrMalformedNumeral = errors.New("malformed numeral")
)

// Detect infers the base of raw and parses its value.
//
// An explicit 0b/0o/0x prefix (case-insensitive) forces the base.
// Otherwise the base is inferred from the character set, in this fixed
// priority: any hex letter means hexadecimal; any 8/9 digit means
// decimal; all 0/1 with more than one digit means binary; all octal
// digits with a leading 0 and more than one digit means octal; anything
// else is decimal. A string of only zeros and ones is deliberately read
// as binary even though it is also valid decimal; do not reorder these
// checks.
//
// A leading +/- sign and underscore digit-group separators are accepted
// anywhere and stripped before inference.
func Detect(raw string) (*big.Int, Base, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, 0, ErrEmptyInput
	}

	sign := ""
	if text[0] == '+' || text[0] == '-' {
		sign = text[:1]
		text = text[1:]
	}
	text = strings.ReplaceAll(text, "_", "")
	if text == "" {
		return nil, 0, ErrEmptyBody
	}

	base := Decimal
	body := text
	switch lower := strings.ToLower(text); {
	case strings.HasPrefix(lower, "0b"):
		base, body = Binary, text[2:]
	case strings.HasPrefix(lower, "0o"):
		base, body = Octal, text[2:]
	case strings.HasPrefix(lower, "0x"):
		base, body = Hexadecimal, text[2:]
	default:
		upper := strings.ToUpper(body)
		switch {
		case strings.ContainsAny(upper, "ABCDEF"):
			base = Hexadecimal
		case strings.ContainsAny(upper, "89"):
			base = Decimal
		case len(body) > 1 && composedOf(upper, "01"):
			base = Binary
		case len(body) > 1 && body[0] == '0' && composedOf(upper, "01234567"):
			base = Octal
		}
	}

	if body == "" {
		return nil, 0, ErrEmptyBody
	}

	value, ok := new(big.Int).SetString(sign+body, int(base))
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q is not a valid base-%d numeral", ErrMalformedNumeral, raw, base)
	}
	return value, base, nil
}

// composedOf reports whether every byte of s is in set.
func composedOf(s, set string) bool {
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(set, rune(s[i])) {
			return false
		}
	}
	return true
}
