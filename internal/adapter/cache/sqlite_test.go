package cache

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_MissThenHit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	if _, ok, err := store.Get(ctx, "mitigate"); err != nil || ok {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	payload := []byte(`{"pos":"v."}`)
	if err := store.Put(ctx, "mitigate", payload); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, ok, err := store.Get(ctx, "mitigate")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %s, want %s", got, payload)
	}
}

func TestStore_KeyIsCaseInsensitive(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.Put(ctx, "  Mitigate ", []byte("x")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "MITIGATE"); !ok {
		t.Error("lookup must be case-insensitive and trimmed")
	}
}

func TestStore_ReplaceOverwrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.Put(ctx, "w", []byte("old")); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, "w", []byte("new")); err != nil {
		t.Fatal(err)
	}
	got, _, _ := store.Get(ctx, "w")
	if string(got) != "new" {
		t.Errorf("payload = %s, want new", got)
	}
}

func TestOpen_CreatesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "enrich.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	if err := store.Put(context.Background(), "w", []byte("x")); err != nil {
		t.Fatalf("put on file-backed store: %v", err)
	}
}
