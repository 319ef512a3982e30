package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/foxxcyber/recipe-feed/internal/models"
)

const (
	defaultEmbeddingTimeout = 30 * time.Second
)

var (
	ErrEmbeddingsDisabled = errors.New("embedding provider not configured")
	ErrEmbeddingAPI       = errors.New("embedding api error")
)

// EmbeddingService computes text embeddings through an OpenAI-compatible
// /embeddings endpoint. A service with no API key is valid: Enabled()
// reports false and callers degrade to title-only duplicate detection.
type EmbeddingService struct {
	apiKey     string
	baseURL    string
	model      string
	dimension  int
	httpClient *http.Client
}

// NewEmbeddingService creates a new embedding client
func NewEmbeddingService(apiKey, baseURL, model string, dimension int) *EmbeddingService {
	return &EmbeddingService{
		apiKey:    apiKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		model:     model,
		dimension: dimension,
		httpClient: &http.Client{
			Timeout: defaultEmbeddingTimeout,
		},
	}
}

// Enabled reports whether the provider is configured
func (s *EmbeddingService) Enabled() bool {
	return s.apiKey != ""
}

// Dimension returns the configured embedding dimension
func (s *EmbeddingService) Dimension() int {
	return s.dimension
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// EmbedText computes the embedding vector for a text blob
func (s *EmbeddingService) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if !s.Enabled() {
		return nil, ErrEmbeddingsDisabled
	}

	payload, err := json.Marshal(embeddingRequest{Model: s.model, Input: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/embeddings", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer resp.Body.Close()

	var result embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode embedding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if result.Error != nil {
			return nil, fmt.Errorf("%w: %s", ErrEmbeddingAPI, result.Error.Message)
		}
		return nil, fmt.Errorf("%w: HTTP %d", ErrEmbeddingAPI, resp.StatusCode)
	}

	if len(result.Data) == 0 {
		return nil, fmt.Errorf("%w: empty response", ErrEmbeddingAPI)
	}

	embedding := result.Data[0].Embedding
	if s.dimension > 0 && len(embedding) != s.dimension {
		return nil, fmt.Errorf("%w: expected %d dimensions, got %d", ErrEmbeddingAPI, s.dimension, len(embedding))
	}

	return embedding, nil
}

// BuildEmbeddingText assembles the blob that represents a recipe for
// similarity purposes: title, raw ingredient lines and steps joined by
// newlines, in that order.
func BuildEmbeddingText(recipe models.ParsedRecipe) string {
	parts := make([]string, 0, 1+len(recipe.Ingredients)+len(recipe.Steps))
	parts = append(parts, recipe.Title)
	for _, ing := range recipe.Ingredients {
		parts = append(parts, ing.RawText)
	}
	parts = append(parts, recipe.Steps...)
	return strings.Join(parts, "\n")
}
