package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/storyweave/narrative-backend/internal/core/domain"
	"github.com/storyweave/narrative-backend/internal/infrastructure/resilience"
)

func TestCompleteSendsSystemAndUserMessages(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"message":{"role":"assistant","content":"  story text  "}}`))
	}))
	defer server.Close()

	client := New(server.URL, "story-model")
	got, err := client.Complete(context.Background(), "system prompt", "user prompt")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if got != "story text" {
		t.Fatalf("expected trimmed completion, got %q", got)
	}
	if captured.Model != "story-model" || captured.Stream {
		t.Fatalf("unexpected request envelope: %+v", captured)
	}
	if len(captured.Messages) != 2 {
		t.Fatalf("expected system+user messages, got %+v", captured.Messages)
	}
	if captured.Messages[0].Role != "system" || captured.Messages[0].Content != "system prompt" {
		t.Fatalf("unexpected system message: %+v", captured.Messages[0])
	}
	if captured.Messages[1].Role != "user" || captured.Messages[1].Content != "user prompt" {
		t.Fatalf("unexpected user message: %+v", captured.Messages[1])
	}
}

func TestCompleteIncludesHTTPBodyInError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL, "story-model")
	_, err := client.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "model not loaded") {
		t.Fatalf("expected response body in error, got %v", err)
	}
	if domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("404 is not a temporary condition: %v", err)
	}
}

func TestCompleteMarksRetryableStatusTemporary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(server.URL, "story-model")
	_, err := client.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.ErrTemporary) {
		t.Fatalf("expected ErrTemporary for 503, got %v", err)
	}
}

func TestCompleteRetriesThroughExecutor(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "warming up", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"message":{"content":"recovered"}}`))
	}))
	defer server.Close()

	executor := resilience.NewExecutor(resilience.Config{
		RetryMaxAttempts:    3,
		RetryInitialBackoff: 1,
		RetryMaxBackoff:     1,
		RetryMultiplier:     2,
		BreakerEnabled:      false,
	})
	client := NewWithOptions(server.URL, "story-model", Options{ResilienceExecutor: executor})

	got, err := client.Complete(context.Background(), "s", "u")
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "recovered" || calls != 2 {
		t.Fatalf("expected retry then success, got %q after %d calls", got, calls)
	}
}
