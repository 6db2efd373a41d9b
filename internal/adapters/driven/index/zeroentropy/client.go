// Package zeroentropy provides the index-service adapter backed by the
// ZeroEntropy HTTP API. It implements driven.IndexService; the service's
// storage, ranking model and reranking model stay opaque behind it.
package zeroentropy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/presscan-labs/presscan-cli/internal/core/domain"
	"github.com/presscan-labs/presscan-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.IndexService = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL = "https://api.zeroentropy.dev/v1"
	DefaultTimeout = 60 * time.Second
)

// Config holds configuration for the ZeroEntropy client.
type Config struct {
	// APIKey is the ZeroEntropy API key (required).
	APIKey string

	// BaseURL is the API base URL (default: https://api.zeroentropy.dev/v1).
	BaseURL string

	// Timeout is the request timeout (default: 60s).
	Timeout time.Duration
}

// Client talks to the ZeroEntropy API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// errorResponse is the API error envelope.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewClient creates a new ZeroEntropy client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("zeroentropy: API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		client:  &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}, nil
}

// post sends a JSON request and decodes the response into out when the
// call succeeds. Conflict and not-found statuses map onto the domain
// sentinels so callers can branch with errors.Is.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil {
			return nil
		}
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil

	case resp.StatusCode == http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, apiDetail(respBody))

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, apiDetail(respBody))

	default:
		return fmt.Errorf("zeroentropy error (status %d): %s", resp.StatusCode, apiDetail(respBody))
	}
}

func apiDetail(body []byte) string {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Detail != "" {
		return envelope.Detail
	}
	return string(body)
}

// encodeFilter converts the domain predicate to the API's filter object:
// {"field": {"$eq": "value"}}. A nil filter stays nil so the field is
// omitted entirely - the API distinguishes an empty filter from none.
func encodeFilter(filter *domain.Filter) map[string]map[string]string {
	if filter == nil {
		return nil
	}
	encoded := make(map[string]map[string]string, len(filter.Clauses))
	for _, clause := range filter.Clauses {
		encoded[clause.Field] = map[string]string{"$eq": clause.Value}
	}
	return encoded
}
