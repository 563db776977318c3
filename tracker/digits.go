package tracker

import (
	"strings"

	"github.com/vsariola/chiptrack"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SetDigit replaces the decimal digit at position pos (0 = ones, 1 = tens,
// ...) of value with digit, leaving the other digits untouched.
func SetDigit(pos, value, digit int) int {
	div := 1
	for ; pos > 0; pos-- {
		div *= 10
	}
	return value - (value/div%10-digit)*div
}

// decDigit returns the value of a decimal digit character, -1 if c is not
// one.
func decDigit(c rune) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return -1
}

// hexDigit returns the value of a lower case hexadecimal digit character,
// -1 if c is not one.
func hexDigit(c rune) int {
	if v := decDigit(c); v >= 0 {
		return v
	}
	switch {
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}

// commandOrdinal returns the command whose symbol is c, case
// insensitively.
func commandOrdinal(c rune) (chiptrack.Command, bool) {
	if c == 0 {
		return chiptrack.CommandEmpty, false
	}
	i := strings.Index(chiptrack.CommandSymbols, cases.Upper(language.Und).String(string(c)))
	if i < 0 {
		return chiptrack.CommandEmpty, false
	}
	return chiptrack.Command(i), true
}

// octaveDigit returns the octave of an octave character '1'..'8', -1 if c is
// not one.
func octaveDigit(c rune) int {
	if c >= '1' && c <= '8' {
		return int(c - '1')
	}
	return -1
}
