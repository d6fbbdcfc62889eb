package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/creatorstack/titlegen/internal/config"
	"github.com/creatorstack/titlegen/internal/metrics"
)

// ErrMissingAPIKey is returned before any network call when no credential is
// configured. Handlers map it to a dedicated 500.
var ErrMissingAPIKey = errors.New("Missing GEMINI_API_KEY configuration")

// Generator is the upstream collaborator contract: one prompt pair in, one
// opaque response out. Satisfied by *Client; handlers accept the interface so
// tests can stub the upstream.
type Generator interface {
	GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (interface{}, error)
	Model() string
}

// Client calls the Gemini generateContent REST API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
	sampling   config.Sampling
	maxRetries int
}

// NewClient creates a Gemini client from the app config.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.GeminiTimeoutSeconds) * time.Second,
		},
		baseURL:    strings.TrimSuffix(cfg.GeminiBaseURL, "/"),
		model:      cfg.GeminiModel,
		apiKey:     cfg.GeminiAPIKey,
		sampling:   cfg.Sampling,
		maxRetries: cfg.GeminiMaxRetries,
	}
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends the prompts with the JSON schema hint and fixed
// sampling parameters, and returns the decoded response body as an opaque
// value. The response shape is not stable across API versions, so no typed
// decode happens here; extraction is the caller's problem.
//
// Retries are off by default (GEMINI_MAX_RETRIES=0); when enabled, transient
// failures are retried with linear backoff.
func (c *Client) GenerateContent(ctx context.Context, systemPrompt, userPrompt string) (interface{}, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled during retry: %w", ctx.Err())
			}
		}

		resp, err := c.call(ctx, systemPrompt, userPrompt)
		if err == nil {
			return resp, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			break
		}
	}

	return nil, lastErr
}

// call makes a single generateContent request.
func (c *Client) call(ctx context.Context, systemPrompt, userPrompt string) (interface{}, error) {
	payload := generateRequest{
		SystemInstruction: &Content{
			Parts: []Part{{Text: systemPrompt}},
		},
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: userPrompt}}},
		},
		GenerationConfig: GenerationConfig{
			Temperature:      c.sampling.Temperature,
			TopP:             c.sampling.TopP,
			TopK:             c.sampling.TopK,
			MaxOutputTokens:  c.sampling.MaxOutputTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	metrics.ObserveUpstream(start)
	if err != nil {
		return nil, fmt.Errorf("call Gemini: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Gemini returned %d: %s (model: %s)",
			resp.StatusCode, string(respBody), c.model)
	}

	// The body is kept opaque. A non-JSON body degrades to its literal text
	// so extraction still has something to work with.
	var decoded interface{}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return string(respBody), nil
	}

	return decoded, nil
}

// isRetryableError checks if an error is transient and worth retrying.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrMissingAPIKey) {
		return false
	}
	errStr := err.Error()
	retryablePatterns := []string{
		"timeout", "timed out", "connection refused", "connection reset",
		"no such host", "EOF", "503", "502", "504", "429", "500",
	}
	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}
