package vocab

import (
	"errors"
	"testing"
	"time"

	"github.com/yhlin/vocabsheet/internal/domain"
)

func TestDue(t *testing.T) {
	t.Parallel()

	records := []domain.Record{
		{Word: "a", ReviewDate: "2025-08-10"},
		{Word: "b", ReviewDate: "2025-08-20"},
		{Word: "c", ReviewDate: ""},
		{Word: "d", ReviewDate: "2025-08-19"},
	}
	asOf := time.Date(2025, 8, 19, 15, 4, 5, 0, time.UTC)

	due := Due(records, asOf)

	if len(due) != 2 {
		t.Fatalf("got %d due records, want 2: %+v", len(due), due)
	}
	if due[0].Word != "a" || due[1].Word != "d" {
		t.Errorf("wrong records or order: %+v", due)
	}
}

func TestDue_SameDayIsDue(t *testing.T) {
	t.Parallel()

	// Calendar-date comparison: a record dated today is due even when the
	// reference time-of-day is already past midnight's instant.
	records := []domain.Record{{Word: "a", ReviewDate: "2025-08-19"}}
	asOf := time.Date(2025, 8, 19, 0, 0, 1, 0, time.UTC)

	if len(Due(records, asOf)) != 1 {
		t.Error("record dated on the reference date must be due")
	}
}

func TestDue_BlankNeverDue(t *testing.T) {
	t.Parallel()

	records := []domain.Record{{Word: "a"}, {Word: "b", ReviewDate: "   "}}
	asOf := time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)

	// "   " is not blank after canonical writes, but rows written by hand
	// may carry it; either way it does not parse and is never due.
	if got := Due(records, asOf); len(got) != 0 {
		t.Errorf("blank review dates must never be due, got %+v", got)
	}
}

func TestNextReviewDate(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 8, 12, 9, 30, 0, 0, time.UTC)

	got, err := NextReviewDate(today, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-08-19" {
		t.Errorf("NextReviewDate(+7) = %q, want 2025-08-19", got)
	}

	sameDay, err := NextReviewDate(today, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sameDay != "2025-08-12" {
		t.Errorf("NextReviewDate(+0) = %q, want 2025-08-12", sameDay)
	}
}

func TestNextReviewDate_MonthRollover(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	got, err := NextReviewDate(today, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-09-02" {
		t.Errorf("NextReviewDate across month = %q, want 2025-09-02", got)
	}
}

func TestNextReviewDate_NegativeRejected(t *testing.T) {
	t.Parallel()

	_, err := NextReviewDate(time.Now(), -1)
	if err == nil {
		t.Fatal("expected error for negative offset")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
