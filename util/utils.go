package util

import (
	"strings"
	"time"
)

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006",
	"02/01/2006",
}

// ParseDateLenient parses a date in any of the layouts clients are known
// to send. Returns false rather than an error when nothing matches, so
// date-bounded queries can skip bad values instead of failing.
func ParseDateLenient(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
