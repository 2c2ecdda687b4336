// Package dates normalizes the date strings found in bank exports to
// calendar dates in YYYY-MM-DD form.
package dates

import (
	"strings"
	"time"
)

// ISO is the canonical calendar date layout.
const ISO = "2006-01-02"

// layouts tried in order when the fast path does not apply.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
	"2 Jan 2006",
	"Jan 2, 2006",
}

// Normalize returns the YYYY-MM-DD calendar date for an arbitrary date or
// datetime string, or "" when no layout matches. An input already starting
// with a canonical date returns those 10 characters verbatim, so normalizing
// is idempotent and never shifts a date across timezones.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if isCanonicalPrefix(s) {
		return s[:10]
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(ISO)
		}
	}
	return ""
}

// isCanonicalPrefix reports whether the first 10 bytes look like YYYY-MM-DD.
func isCanonicalPrefix(s string) bool {
	if len(s) < 10 {
		return false
	}
	for i := 0; i < 10; i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return false
			}
		default:
			if s[i] < '0' || s[i] > '9' {
				return false
			}
		}
	}
	return true
}
