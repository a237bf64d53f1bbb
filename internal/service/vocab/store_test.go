package vocab

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/yhlin/vocabsheet/internal/config"
)

// fakeStore is an in-memory RowStore with 1-based row indexing, mirroring
// the worksheet semantics of the real adapter.
type fakeStore struct {
	rows    [][]string
	readErr error
}

func (f *fakeStore) ReadAll(ctx context.Context) ([][]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	out := make([][]string, len(f.rows))
	for i, row := range f.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (f *fakeStore) AppendRows(ctx context.Context, rows [][]string) error {
	for _, row := range rows {
		f.rows = append(f.rows, append([]string(nil), row...))
	}
	return nil
}

func (f *fakeStore) WriteRow(ctx context.Context, index int, row []string) error {
	if index < 1 {
		return errors.New("row index must be 1-based")
	}
	for len(f.rows) < index {
		f.rows = append(f.rows, nil)
	}
	f.rows[index-1] = append([]string(nil), row...)
	return nil
}

func (f *fakeStore) InsertRowAt(ctx context.Context, index int, row []string) error {
	if index < 1 || index > len(f.rows)+1 {
		return errors.New("row index out of range")
	}
	f.rows = append(f.rows, nil)
	copy(f.rows[index:], f.rows[index-1:])
	f.rows[index-1] = append([]string(nil), row...)
	return nil
}

func newTestService(store *fakeStore) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, store, config.ReviewConfig{DefaultDays: 3, ScheduleOnAdd: true})
}

func strPtr(s string) *string { return &s }
