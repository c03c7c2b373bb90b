package blacklist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestIsBlacklistedListed(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/verification/karma/bad@example.com" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "test-key", 2*time.Second)

	listed, err := client.IsBlacklisted(context.Background(), "bad@example.com")
	if err != nil {
		t.Fatalf("IsBlacklisted: %v", err)
	}
	if !listed {
		t.Error("expected identity to be listed")
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("authorization header = %q", gotAuth)
	}
}

func TestIsBlacklistedClear(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "", 2*time.Second)

	listed, err := client.IsBlacklisted(context.Background(), "clean@example.com")
	if err != nil {
		t.Fatalf("IsBlacklisted: %v", err)
	}
	if listed {
		t.Error("expected identity to be clear")
	}
}

func TestIsBlacklistedRetriesServerErrors(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "key", 2*time.Second)

	listed, err := client.IsBlacklisted(context.Background(), "flaky@example.com")
	if err != nil {
		t.Fatalf("IsBlacklisted: %v", err)
	}
	if !listed {
		t.Error("expected identity to be listed after retries")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("provider called %d times, want 3", got)
	}
}

func TestIsBlacklistedClientErrorNotRetried(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "wrong-key", 2*time.Second)

	if _, err := client.IsBlacklisted(context.Background(), "anyone@example.com"); err == nil {
		t.Fatal("expected error for 401 response")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("provider called %d times, want 1", got)
	}
}
