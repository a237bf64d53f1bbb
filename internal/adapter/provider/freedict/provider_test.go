package freedict

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(baseURL string) *Provider {
	return NewProvider(baseURL, 5*time.Second, newTestLogger())
}

func TestProvider_FetchEntry_Success(t *testing.T) {
	t.Parallel()

	body := `[{
		"word": "mitigate",
		"meanings": [
			{
				"partOfSpeech": "verb",
				"definitions": [
					{"definition": "To reduce or lessen.", "example": "Trees mitigate the heat."},
					{"definition": "To downplay.", "example": ""}
				]
			}
		]
	},
	{
		"word": "mitigate",
		"meanings": [
			{
				"partOfSpeech": "verb",
				"definitions": [
					{"definition": "To become less harsh.", "example": ""}
				]
			}
		]
	}]`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mitigate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	result, err := p.FetchEntry(context.Background(), "mitigate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Word != "mitigate" {
		t.Errorf("word = %q, want mitigate", result.Word)
	}
	// Senses from both etymology entries are concatenated in order.
	if len(result.Senses) != 3 {
		t.Fatalf("got %d senses, want 3", len(result.Senses))
	}
	if result.Senses[0].Example != "Trees mitigate the heat." {
		t.Errorf("first sense example = %q", result.Senses[0].Example)
	}
	if result.Senses[2].Definition != "To become less harsh." {
		t.Errorf("third sense definition = %q", result.Senses[2].Definition)
	}
}

func TestProvider_FetchEntry_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	result, err := p.FetchEntry(context.Background(), "zzzzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result for 404, got %+v", result)
	}
}

func TestProvider_FetchEntry_RetriesOn5xx(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[{"word": "hello", "meanings": []}]`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	result, err := p.FetchEntry(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error after retry: %v", err)
	}
	if result == nil || result.Word != "hello" {
		t.Errorf("unexpected result: %+v", result)
	}
	if calls.Load() != 2 {
		t.Errorf("expected 2 calls (one retry), got %d", calls.Load())
	}
}

func TestProvider_FetchEntry_BadJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	p := newTestProvider(srv.URL)
	if _, err := p.FetchEntry(context.Background(), "hello"); err == nil {
		t.Fatal("expected decode error")
	}
}
