// Package localize converts numerals and dates into locale display strings.
// All functions are pure and safe for concurrent use.
package localize

import (
	"strconv"
	"strings"

	"github.com/dailystar-data/police-story-go/internal/domain/entities/locale"
)

// bengaliDigits is indexed by the ASCII digit value.
var bengaliDigits = [10]rune{'০', '১', '২', '৩', '৪', '৫', '৬', '৭', '৮', '৯'}

// Digits replaces every ASCII digit in s with its locale glyph. Non-digit
// characters pass through, so "19" becomes two glyphs, not one lookup.
func Digits(s string, l locale.Locale) string {
	if l != locale.Bengali {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return bengaliDigits[r-'0']
		}
		return r
	}, s)
}

// ToLocaleNumerals converts strings and numbers to their locale display form.
// Any other value, nil included, is returned unchanged so display code can
// pass through placeholders without checking first.
func ToLocaleNumerals(value any, l locale.Locale) any {
	s, ok := numeralString(value)
	if !ok {
		return value
	}
	return Digits(s, l)
}

func numeralString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case int:
		return strconv.Itoa(v), true
	case int8:
		return strconv.FormatInt(int64(v), 10), true
	case int16:
		return strconv.FormatInt(int64(v), 10), true
	case int32:
		return strconv.FormatInt(int64(v), 10), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint:
		return strconv.FormatUint(uint64(v), 10), true
	case uint8:
		return strconv.FormatUint(uint64(v), 10), true
	case uint16:
		return strconv.FormatUint(uint64(v), 10), true
	case uint32:
		return strconv.FormatUint(uint64(v), 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	}
	return "", false
}
