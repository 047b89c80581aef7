package models

import (
	"strings"
	"time"
)

// DateLayout is the user-facing calendar date format (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// timestampLayout is used for note created_at/updated_at columns. Kept as
// text so both drivers store the identical representation.
const timestampLayout = "2006-01-02 15:04:05"

// ParseDate validates s as a real calendar date and returns it trimmed.
// The stored value is the user's text verbatim, not a reformatted date.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if _, err := time.Parse(DateLayout, s); err != nil {
		return "", err
	}
	return s, nil
}

// Today returns the current date in DateLayout.
func Today() string {
	return time.Now().Format(DateLayout)
}

// Timestamp returns t formatted for the note timestamp columns.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
