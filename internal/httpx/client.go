package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"maison-storefront/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const DefaultTimeout = 15 * time.Second

// Client is the single configured gateway to the storefront REST API.
// Every resource service goes through it; it owns the base URL, the JSON
// headers, the request timeout and the per-request id.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRateLimit throttles outgoing requests to r events with the given burst.
func WithRateLimit(r rate.Limit, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(r, burst)
	}
}

func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		logger.Named("gateway").Warn("API base URL is empty")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	reqID := logger.RequestIDFrom(ctx)
	if reqID == "" {
		reqID = uuid.New().String()
	}

	log := logger.Named("gateway").With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", reqID),
	)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			log.Error("Rate limiter wait failed", zap.Error(err))
			return err
		}
	}

	var payload io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			log.Error("Failed to marshal request body", zap.Error(err))
			return err
		}
		payload = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Request failed", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Warn("Server returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return newAPIError(resp.StatusCode, bodyBytes)
	}

	log.Debug("Request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if out == nil || len(bodyBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		log.Error("Failed decoding response", zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
