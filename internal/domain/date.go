package domain

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// DateLayout is the ISO calendar-date form every stored Review Date uses.
const DateLayout = "2006-01-02"

// ParseReviewDate canonicalizes a raw review-date value to ISO YYYY-MM-DD.
// A blank value is valid and returns "" (never scheduled). Common human
// formats ("2025/08/19", "Aug 19, 2025", "19.08.2025", ...) are accepted;
// a non-blank value that does not parse as a calendar date returns a
// ValidationError carrying the field name and raw value.
func ParseReviewDate(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", nil
	}

	t, err := dateparse.ParseAny(trimmed)
	if err != nil {
		return "", NewValidationError(FieldReviewDate, raw, "not a valid calendar date")
	}
	return t.Format(DateLayout), nil
}

// DateOnly truncates a time to its calendar date in the same location.
// Scheduling compares dates, never timestamps.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
