package vocab

import (
	"fmt"
	"time"

	"github.com/yhlin/vocabsheet/internal/domain"
)

// Due filters records to those whose review date is non-empty and falls on
// or before asOf. The comparison is by calendar date, not timestamp, and
// the output preserves input (store row) order. Records whose review date
// is blank, or does not parse (possible for rows written outside this
// tool) are never due.
func Due(records []domain.Record, asOf time.Time) []domain.Record {
	cutoff := domain.DateOnly(asOf)

	due := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		if rec.ReviewDate == "" {
			continue
		}
		d, err := time.ParseInLocation(domain.DateLayout, rec.ReviewDate, asOf.Location())
		if err != nil {
			continue
		}
		if !d.After(cutoff) {
			due = append(due, rec)
		}
	}
	return due
}

// NextReviewDate computes the review date days calendar days after today.
// The offset is relative to today; rescheduling is never cumulative on the
// record's previous due date. A negative offset is a validation error.
func NextReviewDate(today time.Time, days int) (string, error) {
	if days < 0 {
		return "", domain.NewValidationError("days", fmt.Sprintf("%d", days), "must be a non-negative number of days")
	}
	return domain.DateOnly(today).AddDate(0, 0, days).Format(domain.DateLayout), nil
}
