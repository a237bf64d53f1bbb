package vocab

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/yhlin/vocabsheet/internal/domain"
)

// headerAction is the corrective write needed to restore the header invariant.
type headerAction int

const (
	// headerOK means row 1 already equals the canonical header.
	headerOK headerAction = iota
	// headerWrite means the store is empty; write the header as row 1.
	headerWrite
	// headerInsert means row 1 holds something else (data or a malformed
	// header); insert the canonical header above it, discarding nothing.
	headerInsert
)

// headerFix decides the corrective action for the given store contents.
// Pure decision; the Service applies it.
func headerFix(rows [][]string) headerAction {
	if len(rows) == 0 {
		return headerWrite
	}
	if isCanonicalHeader(rows[0]) {
		return headerOK
	}
	return headerInsert
}

// isCanonicalHeader reports whether row equals the canonical header exactly,
// in order and spelling. Trailing empty cells (a sheet quirk) are tolerated.
func isCanonicalHeader(row []string) bool {
	header := domain.Header()
	if len(row) < len(header) {
		return false
	}
	for i, name := range header {
		if row[i] != name {
			return false
		}
	}
	for _, cell := range row[len(header):] {
		if cell != "" {
			return false
		}
	}
	return true
}

// ensureHeader restores the header invariant before a mutating operation,
// reading the store once and performing at most one corrective write.
// Idempotent: an empty store, a store with only data, and a store with a
// correct header all converge to the same state. Returns whether a
// corrective write happened. Failures here are fatal for the operation;
// no data write may proceed on a store in an unknown header state.
func (s *Service) ensureHeader(ctx context.Context) (bool, error) {
	rows, err := s.store.ReadAll(ctx)
	if err != nil {
		return false, fmt.Errorf("read store: %w", err)
	}

	switch headerFix(rows) {
	case headerOK:
		return false, nil
	case headerWrite:
		if err := s.store.WriteRow(ctx, 1, domain.Header()); err != nil {
			return false, fmt.Errorf("write header: %w", err)
		}
	case headerInsert:
		if err := s.store.InsertRowAt(ctx, 1, domain.Header()); err != nil {
			return false, fmt.Errorf("insert header: %w", err)
		}
	}

	s.log.InfoContext(ctx, "header restored", slog.Int("data_rows", len(rows)))
	return true, nil
}
