// Package gateway implements the typed HTTP clients for the three backend
// services (users, activities, search). Every client shares one request
// helper that injects the bearer token, serializes JSON, and normalizes
// failures into *APIError or domain.ErrServiceUnreachable.
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

	"github.com/rs/zerolog"

	"github.com/sporthub/webapp/internal/api/metrics"
	"github.com/sporthub/webapp/internal/core/domain"
)

// APIError is a non-success HTTP response from a backend service, carrying
// the message from the JSON error body when one was present.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// errorEnvelope is the canonical error body of all three backends.
type errorEnvelope struct {
	Error string `json:"error"`
}

type client struct {
	base    string
	service string
	http    *http.Client
	log     zerolog.Logger
}

func newClient(baseURL, service string, log zerolog.Logger) *client {
	return &client{
		base:    strings.TrimRight(baseURL, "/"),
		service: service,
		http:    &http.Client{},
		log:     log.With().Str("service", service).Logger(),
	}
}

// do issues exactly one request and decodes the JSON response into out when
// out is non-nil. There is no retry anywhere in this layer.
func (c *client) do(ctx context.Context, op, method, path string, query url.Values, body, out any, token string) error {
	start := time.Now()
	err := c.roundTrip(ctx, method, path, query, body, out, token)

	outcome := "success"
	if err != nil {
		var apiErr *APIError
		switch {
		case errors.Is(err, domain.ErrServiceUnreachable):
			outcome = "transport_error"
		case errors.As(err, &apiErr):
			outcome = "http_error"
		default:
			outcome = "error"
		}
	}
	metrics.GatewayRequestsTotal.WithLabelValues(c.service, op, outcome).Inc()
	metrics.GatewayRequestDuration.WithLabelValues(c.service, op).Observe(time.Since(start).Seconds())
	return err
}

func (c *client) roundTrip(ctx context.Context, method, path string, query url.Values, body, out any, token string) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", c.service, err)
		}
		reader = bytes.NewReader(buf)
	}

	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", c.service, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("backend request failed")
		return domain.ErrServiceUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.failure(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", c.service, err)
	}
	return nil
}

// failure extracts the server-provided message, falling back to a
// status-line derived one when the body is not the expected envelope.
func (c *client) failure(resp *http.Response) error {
	var envelope errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil && envelope.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: envelope.Error}
	}
	return &APIError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

func (c *client) health(ctx context.Context) error {
	return c.do(ctx, "health", http.MethodGet, "/health", nil, nil, nil, "")
}
