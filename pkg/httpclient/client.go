package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Mukeshsilwal/bus-booking-system-sub000/pkg/logger"
)

// ErrTimeout is returned when a request exceeds the fixed wall-clock budget.
// Callers treat it like any other network error for display purposes.
var ErrTimeout = errors.New("upstream request timed out")

// StatusError carries a non-2xx upstream response. Message holds the
// backend's own error text when the body was parseable, so it can be
// surfaced verbatim to the user.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

// Config holds the shared client settings. Retries apply only to
// idempotent reads; writes are attempted exactly once.
type Config struct {
	Timeout    time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// DefaultConfig returns the fixed budgets used when none are configured.
func DefaultConfig() Config {
	return Config{
		Timeout:    10 * time.Second,
		RetryCount: 3,
		RetryDelay: 500 * time.Millisecond,
	}
}

// Client is the shared HTTP client for all upstream backend calls.
type Client struct {
	http   *http.Client
	config Config
	log    *logger.Logger
}

func New(cfg Config, log *logger.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		config: cfg,
		log:    log,
	}
}

// GetJSON issues a GET and decodes the JSON response into dest.
// Server errors (5xx), rate limiting (429) and timeouts are retried a
// fixed number of times with a fixed delay between attempts.
func (c *Client) GetJSON(ctx context.Context, url string, headers map[string]string, dest interface{}) error {
	return c.doJSON(ctx, http.MethodGet, url, headers, nil, dest, true)
}

// PostJSON issues a POST with a JSON body and decodes the JSON response
// into dest. Writes are never retried: blindly retrying a reservation
// write risks double-booking.
func (c *Client) PostJSON(ctx context.Context, url string, headers map[string]string, body, dest interface{}) error {
	return c.doJSON(ctx, http.MethodPost, url, headers, body, dest, false)
}

func (c *Client) doJSON(ctx context.Context, method, url string, headers map[string]string, body, dest interface{}, idempotent bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	attempts := 1
	if idempotent {
		attempts = c.config.RetryCount + 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.config.RetryDelay):
			}
		}

		start := time.Now()
		status, err := c.doOnce(ctx, method, url, headers, payload, dest)
		c.log.LogUpstreamCall(ctx, method, url, status, time.Since(start), err)

		if err == nil {
			return nil
		}
		lastErr = err

		if !idempotent || !retryable(err) {
			return err
		}
	}

	return lastErr
}

func (c *Client) doOnce(ctx context.Context, method, url string, headers map[string]string, payload []byte, dest interface{}) (int, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return 0, fmt.Errorf("%s %s: %w", method, url, ErrTimeout)
		}
		return 0, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    extractMessage(data),
		}
	}

	if dest != nil && len(data) > 0 {
		if err := json.Unmarshal(data, dest); err != nil {
			return resp.StatusCode, fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return resp.StatusCode, nil
}

// retryable reports whether an idempotent request may be reissued:
// server errors, rate limiting, and timeouts only. Client errors (4xx)
// are never retried.
func retryable(err error) bool {
	if errors.Is(err, ErrTimeout) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500 || statusErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// extractMessage pulls the human-readable error text out of an upstream
// error body. The backend answers either {"message": ...} or a bare string.
func extractMessage(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		return plain
	}

	return string(data)
}
