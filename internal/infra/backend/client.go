// Package backend provides the shared HTTP client for the CoolGym REST
// API. Every service talks to the backend through this one client, so
// bearer injection, locale negotiation, 401 handling and the circuit
// breaker live in exactly one place.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/port"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("backend")

// Client wraps HTTP calls to the CoolGym backend under /api/v1. Requests
// are single attempts behind a circuit breaker; the HTTP client it is
// built with carries the request timeout.
type Client struct {
	httpClient *http.Client
	baseURL    string
	locale     string
	session    port.Session
	cb         *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

var _ port.Requester = (*Client)(nil)

// NewClient creates a backend client. baseURL is the host root; the
// /api/v1 prefix is appended per request.
func NewClient(httpClient *http.Client, baseURL, locale string, session port.Session, cb *gobreaker.CircuitBreaker, logger *zap.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		locale:     locale,
		session:    session,
		cb:         cb,
		logger:     logger,
	}
}

// Get issues GET {baseURL}/api/v1/{path}.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.execute(ctx, http.MethodGet, path, nil)
}

// Post issues POST {baseURL}/api/v1/{path} with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return c.execute(ctx, http.MethodPost, path, body)
}

// Put issues PUT {baseURL}/api/v1/{path} with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return c.execute(ctx, http.MethodPut, path, body)
}

// Patch issues PATCH {baseURL}/api/v1/{path} with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return c.execute(ctx, http.MethodPatch, path, body)
}

// Delete issues DELETE {baseURL}/api/v1/{path}.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.execute(ctx, http.MethodDelete, path, nil)
	return err
}

func (c *Client) execute(ctx context.Context, method, path string, body any) ([]byte, error) {
	ctx, span := tracer.Start(ctx, fmt.Sprintf("Backend.%s", method))
	defer span.End()
	span.SetAttributes(
		attribute.String("http.method", method),
		attribute.String("http.path", path),
	)

	result, err := c.cb.Execute(func() (any, error) {
		return c.doRequest(ctx, method, path, body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, &domain.ErrCircuitOpen{Service: "coolgym-api"}
		}
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.([]byte), nil
}

// doRequest executes a single request against the backend. It never
// retries: a failed call surfaces immediately.
func (c *Client) doRequest(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	url := fmt.Sprintf("%s/api/v1/%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		c.logger.Error("backend: failed to create request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", c.locale)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.session.AccessToken(); token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &domain.ErrTimeout{Operation: fmt.Sprintf("%s %s", method, path)}
		}
		return nil, &domain.ErrExternalService{Service: "coolgym-api", Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("backend: failed to read response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, &domain.ErrExternalService{Service: "coolgym-api", Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		// The token was rejected: drop the authenticated state so the
		// guard sends the user back to the login page.
		c.session.ClearAuth()
		c.logger.Warn("backend: bearer token rejected, session cleared",
			zap.String("method", method),
			zap.String("path", path),
		)
		return nil, &domain.ErrUnauthorized{}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &domain.ErrNotFound{Resource: path}
	case resp.StatusCode == http.StatusNoContent:
		return nil, nil
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		c.logger.Warn("backend: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(respBody)),
		)
		return nil, &domain.ErrBackendStatus{
			Method: method,
			Path:   path,
			Status: resp.StatusCode,
			Body:   string(respBody),
		}
	}

	c.logger.Debug("backend: request OK",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	return respBody, nil
}
