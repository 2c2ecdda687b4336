// Package amount parses the locale-ambiguous numeric strings found in
// Revolut exports.
package amount

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// Parse converts a raw amount string to a signed decimal. Both EU
// ("1.234,56") and US ("1,234.56") conventions are accepted: whichever
// of "." and "," appears last is taken as the decimal mark and the other
// is dropped as a grouping character. Revolut always groups with "."
// when a comma decimal is present, so the rule is unambiguous for its
// exports; it is deliberately not a general locale detector, and a bare
// grouped value like "1.234" reads as a US decimal. Unparseable input
// yields zero, never an error.
func Parse(raw string) decimal.Decimal {
	s := stripSpace(raw)

	lastDot := strings.LastIndexByte(s, '.')
	lastComma := strings.LastIndexByte(s, ',')
	switch {
	case lastComma > lastDot:
		// EU: "." groups, "," is the decimal mark.
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case lastDot > lastComma:
		// US: "," groups. Keep a lone ".", drop repeated ones ("1.234.567").
		s = strings.ReplaceAll(s, ",", "")
		if strings.Count(s, ".") > 1 {
			s = strings.ReplaceAll(s, ".", "")
		}
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
