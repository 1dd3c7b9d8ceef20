package tts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func newTestClient(endpoint string, maxRetries int) *Client {
	return &Client{
		apiKey:     "test-key",
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 5 * time.Second},
		maxRetries: maxRetries,
	}
}

func TestSynthesizeRetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	out := filepath.Join(t.TempDir(), "voice.mp3")
	c := newTestClient(srv.URL, 6)
	if err := c.Synthesize(context.Background(), "hello", out); err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("server called %d times; want 3", got)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(data) != "mp3-bytes" {
		t.Fatalf("output = %q; want %q", data, "mp3-bytes")
	}
}

func TestSynthesizeFatalStatusDoesNotRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 6)
	err := c.Synthesize(context.Background(), "hello", filepath.Join(t.TempDir(), "voice.mp3"))
	if err == nil {
		t.Fatalf("Synthesize accepted a 401")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("server called %d times; want 1 (no retry on auth failure)", got)
	}
}

func TestSynthesizeGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL, 2)
	err := c.Synthesize(context.Background(), "hello", filepath.Join(t.TempDir(), "voice.mp3"))
	if err == nil {
		t.Fatalf("Synthesize succeeded against a permanently throttled server")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("server called %d times; want 2", got)
	}
}
