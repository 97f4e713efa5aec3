// Package ehex converts attribute values to and from the pseudo-hex
// notation Cepheus Engine uses in UPP strings: 0-9 as digits, 10-15 as
// A-F, and anything larger spelled out in decimal.
package ehex

import (
	"strconv"

	"github.com/KirkDiggler/cepheus-dice/internal/errors"
)

// Encode converts a non-negative value to pseudo-hex notation
func Encode(value int) (string, error) {
	switch {
	case value < 0:
		return "", errors.InvalidArgumentf("cannot encode negative value %d as pseudo-hex", value)
	case value <= 9:
		return strconv.Itoa(value), nil
	case value <= 15:
		return string(rune('A' + value - 10)), nil
	default:
		return strconv.Itoa(value), nil
	}
}

// Decode converts pseudo-hex notation back to its value
func Decode(s string) (int, error) {
	if len(s) == 1 {
		c := s[0]
		if c >= 'A' && c <= 'F' {
			return int(c-'A') + 10, nil
		}
		if c >= 'a' && c <= 'f' {
			return int(c-'a') + 10, nil
		}
	}

	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, errors.InvalidArgumentf("%q is not pseudo-hex notation", s)
	}
	return v, nil
}

// Valid reports whether s is well-formed pseudo-hex notation
func Valid(s string) bool {
	_, err := Decode(s)
	return err == nil
}
