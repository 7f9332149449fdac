package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const maxErrorBodySize = 512

// Client is a typed wrapper over the storefront backend's JSON/HTTP API. It
// holds no commerce state; it only maps requests and responses and normalizes
// failures into the error taxonomy in errors.go.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	log     *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *logrus.Logger) *Client {
	settings := gobreaker.Settings{
		Name:    "storefront-backend",
		Timeout: 15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsSuccessful: func(err error) bool {
			// Only transport failures and backend 5xx responses should trip
			// the breaker; client-side 4xx and application rejections are
			// the caller's problem.
			if err == nil {
				return true
			}
			var httpErr *HTTPError
			if errors.As(err, &httpErr) {
				return httpErr.StatusCode < http.StatusInternalServerError
			}
			var appErr *ApplicationError
			return errors.As(err, &appErr)
		},
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		log:     log,
	}
}

// do executes one request through the circuit breaker and returns the raw
// body of a 2xx response.
func (c *Client) do(ctx context.Context, op, method, path string, payload interface{}) ([]byte, error) {
	return c.breaker.Execute(func() ([]byte, error) {
		var body io.Reader
		if payload != nil {
			raw, err := json.Marshal(payload)
			if err != nil {
				return nil, fmt.Errorf("%s: encode request: %w", op, err)
			}
			body = bytes.NewReader(raw)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, fmt.Errorf("%s: build request: %w", op, err)
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, &NetworkError{Op: op, Err: err}
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &NetworkError{Op: op, Err: err}
		}

		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			c.log.WithFields(logrus.Fields{
				"op":     op,
				"status": resp.StatusCode,
			}).Warn("backend returned non-success status")
			return nil, &HTTPError{Op: op, StatusCode: resp.StatusCode, Body: truncate(raw)}
		}

		return raw, nil
	})
}

// getJSON fetches path and decodes the 2xx body into out.
func (c *Client) getJSON(ctx context.Context, op, path string, out interface{}) error {
	raw, err := c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &MalformedResponseError{Op: op, Err: err}
	}
	return nil
}

func truncate(raw []byte) string {
	if len(raw) > maxErrorBodySize {
		raw = raw[:maxErrorBodySize]
	}
	return string(raw)
}

func pathEscape(segment string) string {
	return url.PathEscape(segment)
}
