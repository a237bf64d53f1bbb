// Package vocab implements the vocabulary tracker's core engine: record
// normalization, batch deduplication, the header invariant on the backing
// sheet, and review scheduling. All transforms are pure; the only I/O goes
// through the consumer-defined RowStore.
package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/yhlin/vocabsheet/internal/config"
	"github.com/yhlin/vocabsheet/internal/domain"
)

// RowStore is the remote tabular store boundary. Row indexes are 1-based
// and include the header row. The store performs no cleaning of its own;
// every row it receives has already been normalized.
type RowStore interface {
	ReadAll(ctx context.Context) ([][]string, error)
	AppendRows(ctx context.Context, rows [][]string) error
	WriteRow(ctx context.Context, index int, row []string) error
	InsertRowAt(ctx context.Context, index int, row []string) error
}

// Service implements the vocabulary business logic over a RowStore.
type Service struct {
	log   *slog.Logger
	store RowStore
	cfg   config.ReviewConfig
}

// NewService creates a vocabulary service.
func NewService(logger *slog.Logger, store RowStore, cfg config.ReviewConfig) *Service {
	return &Service{
		log:   logger.With("service", "vocab"),
		store: store,
		cfg:   cfg,
	}
}

// StoredRecord is a record together with its 1-based row index in the store.
type StoredRecord struct {
	RowIndex int
	domain.Record
}

// AddWord normalizes and saves a single record. Word and Meaning are
// required; everything else defaults to empty. A record whose identity
// key already exists updates that row in place (new non-empty fields win,
// the rest keep their stored values); a new key is appended. When the
// record carries no review date and ScheduleOnAdd is set, the review date
// becomes today so the word shows up in the next due query.
func (s *Service) AddWord(ctx context.Context, raw domain.RawRecord, today time.Time) (*domain.Record, error) {
	rec, err := NormalizeRecord(raw)
	if err != nil {
		return nil, err
	}

	var fieldErrs []domain.FieldError
	if rec.Word == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: domain.FieldWord, Message: "required"})
	}
	if rec.Meaning == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: domain.FieldMeaning, Message: "required"})
	}
	if len(fieldErrs) > 0 {
		return nil, &domain.ValidationError{Errors: fieldErrs}
	}

	if _, err := s.ensureHeader(ctx); err != nil {
		return nil, err
	}

	stored, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}
	for _, sr := range stored {
		if sr.Key() != rec.Key() {
			continue
		}
		merged := mergeRecords(sr.Record, rec)
		if err := s.store.WriteRow(ctx, sr.RowIndex, merged.Row()); err != nil {
			return nil, fmt.Errorf("update record row %d: %w", sr.RowIndex, err)
		}
		s.log.InfoContext(ctx, "word updated",
			slog.String("word", merged.Word),
			slog.Int("row", sr.RowIndex),
		)
		return &merged, nil
	}

	if rec.ReviewDate == "" && s.cfg.ScheduleOnAdd {
		rec.ReviewDate = domain.DateOnly(today).Format(domain.DateLayout)
	}

	if err := s.store.AppendRows(ctx, [][]string{rec.Row()}); err != nil {
		return nil, fmt.Errorf("append record: %w", err)
	}

	s.log.InfoContext(ctx, "word added",
		slog.String("word", rec.Word),
		slog.String("review_date", rec.ReviewDate),
	)
	return &rec, nil
}

// mergeRecords overlays incoming on existing: non-empty incoming fields
// replace the stored value, empty ones keep it.
func mergeRecords(existing, incoming domain.Record) domain.Record {
	merged := existing
	for _, field := range domain.Header() {
		if v := incoming.Field(field); v != "" {
			merged.SetField(field, v)
		}
	}
	return merged
}

// ImportError describes one rejected row of an import batch.
type ImportError struct {
	LineNumber int // 1-based position within the batch
	Word       string
	Reason     string
}

// ImportResult reports the outcome of a bulk import.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}

// ImportBatch normalizes, deduplicates, and appends a batch of raw records.
// A failure on one row never aborts the batch: rejected rows are collected
// in the result and the surviving rows proceed. Rows whose identity key is
// already present in the store are skipped silently (counted, not errored).
func (s *Service) ImportBatch(ctx context.Context, raws []domain.RawRecord) (*ImportResult, error) {
	result := &ImportResult{}

	batch := make([]domain.Record, 0, len(raws))
	for i, raw := range raws {
		rec, err := NormalizeRecord(raw)
		if err != nil {
			word := ""
			if raw.Word != nil {
				word = *raw.Word
			}
			result.Errors = append(result.Errors, ImportError{
				LineNumber: i + 1,
				Word:       word,
				Reason:     err.Error(),
			})
			result.Skipped++
			continue
		}
		if rec.Word == "" {
			result.Errors = append(result.Errors, ImportError{
				LineNumber: i + 1,
				Reason:     "empty word after normalization",
			})
			result.Skipped++
			continue
		}
		batch = append(batch, rec)
	}

	existing, err := s.existingKeys(ctx)
	if err != nil {
		return nil, err
	}

	kept := Deduplicate(batch, existing)
	result.Skipped += len(batch) - len(kept)

	if _, err := s.ensureHeader(ctx); err != nil {
		return nil, err
	}

	if len(kept) > 0 {
		rows := make([][]string, len(kept))
		for i, rec := range kept {
			rows[i] = rec.Row()
		}
		if err := s.store.AppendRows(ctx, rows); err != nil {
			return nil, fmt.Errorf("append batch: %w", err)
		}
	}
	result.Imported = len(kept)

	s.log.InfoContext(ctx, "batch imported",
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
		slog.Int("rejected", len(result.Errors)),
	)
	return result, nil
}

// DueReviews returns the records whose review date is on or before asOf,
// in store row order.
func (s *Service) DueReviews(ctx context.Context, asOf time.Time) ([]domain.Record, error) {
	stored, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, len(stored))
	for i, sr := range stored {
		records[i] = sr.Record
	}
	return Due(records, asOf), nil
}

// ListRecords returns up to limit records in store row order.
// A limit <= 0 returns everything.
func (s *Service) ListRecords(ctx context.Context, limit int) ([]domain.Record, error) {
	stored, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(stored) > limit {
		stored = stored[:limit]
	}
	records := make([]domain.Record, len(stored))
	for i, sr := range stored {
		records[i] = sr.Record
	}
	return records, nil
}

// Reschedule sets the review date of the first record matching word to
// today + days. The offset is always relative to today, never to the
// record's previous review date. A negative offset is a validation error;
// an unknown word is a NotFoundError.
func (s *Service) Reschedule(ctx context.Context, word string, days int, today time.Time) (string, error) {
	nextDate, err := NextReviewDate(today, days)
	if err != nil {
		return "", err
	}

	if _, err := s.ensureHeader(ctx); err != nil {
		return "", err
	}

	stored, err := s.loadRecords(ctx)
	if err != nil {
		return "", err
	}

	target := domain.NormalizeText(word)
	for _, sr := range stored {
		if domain.NormalizeText(sr.Word) != target {
			continue
		}
		rec := sr.Record
		rec.ReviewDate = nextDate
		if err := s.store.WriteRow(ctx, sr.RowIndex, rec.Row()); err != nil {
			return "", fmt.Errorf("write record row %d: %w", sr.RowIndex, err)
		}
		s.log.InfoContext(ctx, "review rescheduled",
			slog.String("word", rec.Word),
			slog.String("next_review", nextDate),
		)
		return nextDate, nil
	}

	return "", domain.NewNotFoundError(word)
}

// existingKeys reads the store once and returns the identity keys present.
func (s *Service) existingKeys(ctx context.Context) (map[string]bool, error) {
	stored, err := s.loadRecords(ctx)
	if err != nil {
		return nil, err
	}

	keys := make(map[string]bool, len(stored))
	for _, sr := range stored {
		keys[sr.Key()] = true
	}
	return keys, nil
}

// loadRecords reads all rows and maps the data rows to records with their
// 1-based store row indexes. A correct header row is skipped; a store
// without one (not yet healed) is treated as all data.
func (s *Service) loadRecords(ctx context.Context) ([]StoredRecord, error) {
	rows, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	start := 0
	if len(rows) > 0 && isCanonicalHeader(rows[0]) {
		start = 1
	}

	stored := make([]StoredRecord, 0, len(rows)-start)
	for i := start; i < len(rows); i++ {
		stored = append(stored, StoredRecord{
			RowIndex: i + 1,
			Record:   domain.RecordFromRow(rows[i]),
		})
	}
	return stored, nil
}
