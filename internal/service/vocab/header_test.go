package vocab

import (
	"context"
	"reflect"
	"testing"

	"github.com/yhlin/vocabsheet/internal/domain"
)

func TestEnsureHeader_EmptyStore(t *testing.T) {
	t.Parallel()

	store := &fakeStore{}
	svc := newTestService(store)

	fixed, err := svc.ensureHeader(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fixed {
		t.Error("empty store must get a header written")
	}
	if len(store.rows) != 1 || !reflect.DeepEqual(store.rows[0], domain.Header()) {
		t.Errorf("row 1 = %v, want canonical header", store.rows)
	}
}

func TestEnsureHeader_AlreadyCorrect(t *testing.T) {
	t.Parallel()

	store := &fakeStore{rows: [][]string{
		domain.Header(),
		{"mitigate", "v.", "減輕；緩和", "", "", "", "", "2025-08-19", ""},
	}}
	svc := newTestService(store)

	fixed, err := svc.ensureHeader(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fixed {
		t.Error("correct header must be a no-op")
	}
	if len(store.rows) != 2 {
		t.Errorf("store mutated: %v", store.rows)
	}
}

func TestEnsureHeader_DataInRowOne(t *testing.T) {
	t.Parallel()

	dataRow := []string{"mitigate", "v.", "減輕；緩和", "", "", "", "", "2025-08-19", ""}
	store := &fakeStore{rows: [][]string{append([]string(nil), dataRow...)}}
	svc := newTestService(store)

	fixed, err := svc.ensureHeader(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !fixed {
		t.Error("data in row 1 must trigger a header insert")
	}
	if !reflect.DeepEqual(store.rows[0], domain.Header()) {
		t.Errorf("row 1 = %v, want canonical header", store.rows[0])
	}
	if !reflect.DeepEqual(store.rows[1], dataRow) {
		t.Errorf("previous row 1 must shift down intact, got %v", store.rows[1])
	}
}

func TestEnsureHeader_MalformedHeaderShiftsDown(t *testing.T) {
	t.Parallel()

	partial := []string{"Word", "Meaning", "POS"} // wrong order, wrong length
	store := &fakeStore{rows: [][]string{append([]string(nil), partial...)}}
	svc := newTestService(store)

	if _, err := svc.ensureHeader(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(store.rows[0], domain.Header()) {
		t.Errorf("row 1 = %v, want canonical header", store.rows[0])
	}
	if !reflect.DeepEqual(store.rows[1], partial) {
		t.Errorf("malformed header must be preserved as row 2, got %v", store.rows[1])
	}
}

// Applying the fix twice must be a no-op the second time, with no data lost.
func TestEnsureHeader_Idempotent(t *testing.T) {
	t.Parallel()

	starts := map[string][][]string{
		"empty":          {},
		"only data":      {{"abate", "v.", "減退"}},
		"correct header": {domain.Header(), {"abate", "v.", "減退"}},
	}

	for name, rows := range starts {
		rows := rows
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := &fakeStore{rows: rows}
			svc := newTestService(store)

			if _, err := svc.ensureHeader(context.Background()); err != nil {
				t.Fatalf("first fix: %v", err)
			}
			after := make([][]string, len(store.rows))
			copy(after, store.rows)

			fixed, err := svc.ensureHeader(context.Background())
			if err != nil {
				t.Fatalf("second fix: %v", err)
			}
			if fixed {
				t.Error("second fix must be a no-op")
			}
			if !reflect.DeepEqual(store.rows, after) {
				t.Errorf("store changed on second fix:\nbefore %v\nafter  %v", after, store.rows)
			}
		})
	}
}

func TestIsCanonicalHeader(t *testing.T) {
	t.Parallel()

	if !isCanonicalHeader(domain.Header()) {
		t.Error("canonical header not recognized")
	}
	if !isCanonicalHeader(append(domain.Header(), "", "")) {
		t.Error("trailing empty cells must be tolerated")
	}
	if isCanonicalHeader(append(domain.Header(), "Extra")) {
		t.Error("trailing non-empty cell must not match")
	}
	if isCanonicalHeader([]string{"word", "pos"}) {
		t.Error("wrong spelling must not match")
	}
	if isCanonicalHeader(nil) {
		t.Error("empty row must not match")
	}
}
