package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/statscard/statscard/pkg/httputil"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	cache, err := httputil.NewCache(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("NewCache() failed: %v", err)
	}
	return NewClient(cache, map[string]string{"X-Default": "yes"})
}

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Default") != "yes" {
			t.Error("default header not sent")
		}
		json.NewEncoder(w).Encode(map[string]int{"stars": 42})
	}))
	defer srv.Close()

	var result map[string]int
	if err := newTestClient(t).Get(context.Background(), srv.URL, &result); err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if result["stars"] != 42 {
		t.Errorf("got %v, want stars=42", result)
	}
}

func TestClient_Post(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type = %s", ct)
		}
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		json.NewEncoder(w).Encode(map[string]string{"echo": payload["query"]})
	}))
	defer srv.Close()

	var result map[string]string
	err := newTestClient(t).Post(context.Background(), srv.URL,
		map[string]string{"query": "{ user }"}, &result)
	if err != nil {
		t.Fatalf("Post() failed: %v", err)
	}
	if result["echo"] != "{ user }" {
		t.Errorf("got %v", result)
	}
}

func TestClient_StatusHandling(t *testing.T) {
	tests := []struct {
		name      string
		code      int
		wantErr   error
		retryable bool
	}{
		{"not found", http.StatusNotFound, ErrNotFound, false},
		{"server error", http.StatusInternalServerError, ErrNetwork, true},
		{"rate limited", http.StatusTooManyRequests, ErrRateLimited, true},
		{"forbidden", http.StatusForbidden, ErrNetwork, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkStatus(tt.code)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("checkStatus(%d) = %v, want %v", tt.code, err, tt.wantErr)
			}
			var re *httputil.RetryableError
			if got := errors.As(err, &re); got != tt.retryable {
				t.Errorf("retryable = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestClient_CachedSkipsFetchOnHit(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	calls := 0
	fetch := func(v *string) func() error {
		return func() error {
			calls++
			*v = "fresh"
			return nil
		}
	}

	var v string
	if err := c.Cached(ctx, "k", false, &v, fetch(&v)); err != nil {
		t.Fatalf("Cached() failed: %v", err)
	}
	if calls != 1 || v != "fresh" {
		t.Fatalf("first call: calls=%d v=%q", calls, v)
	}

	var v2 string
	if err := c.Cached(ctx, "k", false, &v2, fetch(&v2)); err != nil {
		t.Fatalf("Cached() failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("fetch called %d times, want cache hit", calls)
	}
	if v2 != "fresh" {
		t.Errorf("cached value = %q", v2)
	}

	// refresh bypasses the cache
	var v3 string
	if err := c.Cached(ctx, "k", true, &v3, fetch(&v3)); err != nil {
		t.Fatalf("Cached() failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("refresh did not bypass cache: calls=%d", calls)
	}
}
