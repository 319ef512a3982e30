package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEmbedText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/embeddings" {
			t.Errorf("path = %q, want /embeddings", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [{"embedding": [0.1, 0.2, 0.3]}]}`))
	}))
	defer server.Close()

	s := NewEmbeddingService("test-key", server.URL, "test-model", 3)

	embedding, err := s.EmbedText(context.Background(), "tomato soup")
	if err != nil {
		t.Fatalf("EmbedText: %v", err)
	}
	if len(embedding) != 3 {
		t.Fatalf("got %d dimensions, want 3", len(embedding))
	}
	if embedding[0] != 0.1 {
		t.Errorf("embedding[0] = %v", embedding[0])
	}
}

func TestEmbedTextDisabled(t *testing.T) {
	s := NewEmbeddingService("", "https://api.example.com/v1", "test-model", 3)

	if s.Enabled() {
		t.Error("service without an API key must report disabled")
	}
	if _, err := s.EmbedText(context.Background(), "x"); !errors.Is(err, ErrEmbeddingsDisabled) {
		t.Fatalf("err = %v, want ErrEmbeddingsDisabled", err)
	}
}

func TestEmbedTextAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	s := NewEmbeddingService("test-key", server.URL, "test-model", 3)

	if _, err := s.EmbedText(context.Background(), "x"); !errors.Is(err, ErrEmbeddingAPI) {
		t.Fatalf("err = %v, want ErrEmbeddingAPI", err)
	}
}

func TestEmbedTextDimensionMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data": [{"embedding": [0.1, 0.2]}]}`))
	}))
	defer server.Close()

	s := NewEmbeddingService("test-key", server.URL, "test-model", 3)

	if _, err := s.EmbedText(context.Background(), "x"); !errors.Is(err, ErrEmbeddingAPI) {
		t.Fatalf("err = %v, want ErrEmbeddingAPI for wrong dimension", err)
	}
}
