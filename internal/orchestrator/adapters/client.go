// Package adapters implements the orchestrator ports over HTTP.
package adapters

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

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"realeagent/internal/platform/middleware"
	"realeagent/internal/upstream"
	"realeagent/pkg/requestcontext"
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 4 << 10

// Option configures a client.
type Option func(*client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) { c.http = hc }
}

// WithPropagator replaces the global text map propagator.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(c *client) { c.propagator = p }
}

// client posts JSON to one upstream service with a bounded wait per call.
type client struct {
	provider   string
	baseURL    string
	timeout    time.Duration
	http       *http.Client
	propagator propagation.TextMapPropagator
}

func newClient(provider, baseURL string, timeout time.Duration, opts ...Option) *client {
	c := &client{
		provider:   provider,
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		http:       &http.Client{},
		propagator: otel.GetTextMapPropagator(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *client) postJSON(ctx context.Context, path string, in, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(in)
	if err != nil {
		return upstream.New(upstream.Internal, c.provider, "marshal request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return upstream.New(upstream.Internal, c.provider, "create request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if id := requestcontext.RequestID(ctx); id != "" {
		req.Header.Set(middleware.HeaderRequestID, id)
	}
	c.propagator.Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return upstream.New(upstream.Timeout, c.provider, fmt.Sprintf("no response within %s", c.timeout), err)
		}
		return upstream.New(upstream.Outage, c.provider, "request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return upstream.FromHTTPStatus(c.provider, resp.StatusCode, errorMessage(resp.Body, resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return upstream.New(upstream.BadData, c.provider, "decode response", err)
	}
	return nil
}

// errorMessage extracts a message from either error envelope.
func errorMessage(r io.Reader, status int) string {
	data, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	var env struct {
		Error       string `json:"error"`
		Description string `json:"error_description"`
		Detail      string `json:"detail"`
	}
	if json.Unmarshal(data, &env) == nil {
		switch {
		case env.Detail != "":
			return env.Detail
		case env.Description != "":
			return env.Description
		case env.Error != "":
			return env.Error
		}
	}
	return fmt.Sprintf("unexpected status %d", status)
}
