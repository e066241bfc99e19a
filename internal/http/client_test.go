package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetch(t *testing.T) {
	payload := []byte("image bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); ua != "locfetch/1.0" {
			t.Errorf("expected default user agent, got %q", ua)
		}
		w.Write(payload)
	}))
	defer server.Close()

	client := NewClient(DefaultOptions())
	body, status, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("expected status 200, got %d", status)
	}
	if !bytes.Equal(body, payload) {
		t.Errorf("expected body %q, got %q", payload, body)
	}
}

func TestFetchNonSuccessLenient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found page"))
	}))
	defer server.Close()

	client := NewClient(DefaultOptions())
	body, status, err := client.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("expected lenient fetch to succeed, got %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", status)
	}
	if string(body) != "not found page" {
		t.Errorf("expected error page body returned verbatim, got %q", body)
	}
}

func TestFetchNonSuccessStrict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.StrictStatus = true
	client := NewClient(opts)

	_, status, err := client.Fetch(context.Background(), server.URL)
	if !errors.Is(err, ErrBadStatus) {
		t.Fatalf("expected ErrBadStatus, got %v", err)
	}
	if status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", status)
	}

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatal("expected *FetchError")
	}
	if fe.URL != server.URL {
		t.Errorf("expected URL %s attached, got %s", server.URL, fe.URL)
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	// Grab a port that nothing is listening on.
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(DefaultOptions())
	_, _, err := client.Fetch(context.Background(), url)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fe.URL != url {
		t.Errorf("expected URL %s attached, got %s", url, fe.URL)
	}
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	client := NewClient(Options{Timeout: 50 * time.Millisecond})
	_, _, err := client.Fetch(context.Background(), server.URL)

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
}

func TestFetchCancelledContext(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	client := NewClient(DefaultOptions())
	if _, _, err := client.Fetch(ctx, server.URL); err == nil {
		t.Error("expected error after context cancellation, got nil")
	}
}

func TestNewClientAppliesDefaults(t *testing.T) {
	client := NewClient(Options{StrictStatus: true})

	if client.opts.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", client.opts.Timeout)
	}
	if client.opts.UserAgent != "locfetch/1.0" {
		t.Errorf("expected default user agent, got %q", client.opts.UserAgent)
	}
	if !client.opts.StrictStatus {
		t.Error("expected strict status preserved")
	}
}
