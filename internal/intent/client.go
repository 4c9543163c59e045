package intent

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"realeagent/internal/intent/metrics"
	dErrors "realeagent/pkg/domain-errors"
	"realeagent/pkg/requestcontext"
)

// Generator is the hosted text model: prompt in, text out.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client turns free text into a TransactionIntent via a Generator.
type Client struct {
	generator Generator
	info      ModelInfo
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithMetrics sets the client metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient builds a Client around generator.
func NewClient(generator Generator, info ModelInfo, opts ...Option) *Client {
	c := &Client{generator: generator, info: info, logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Info returns the backing model description.
func (c *Client) Info() ModelInfo {
	return c.info
}

// ExtractIntent makes exactly one model call. Model failures are not retried.
func (c *Client) ExtractIntent(ctx context.Context, userInput string) (*TransactionIntent, error) {
	requestID := requestcontext.RequestID(ctx)
	if strings.TrimSpace(userInput) == "" {
		return nil, dErrors.Validation("user_input", "is required")
	}

	start := time.Now()
	raw, err := c.generator.Generate(ctx, BuildPrompt(userInput))
	c.metrics.ObserveGenerateLatency(time.Since(start))
	if err != nil {
		c.metrics.IncrementOutcome(metrics.OutcomeServiceError)
		c.logger.ErrorContext(ctx, "intent model call failed",
			"request_id", requestID,
			"model", c.info.Model,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeIntentService, "Intent model request failed")
	}
	c.logger.DebugContext(ctx, "model response", "request_id", requestID, "raw", raw)

	result, perr := parseResponse(raw)
	if perr != nil {
		c.metrics.IncrementOutcome(metrics.OutcomeParseError)
		c.logger.ErrorContext(ctx, "failed to parse model response",
			"request_id", requestID,
			"error", perr,
			"raw", raw,
		)
		return nil, dErrors.Wrap(perr, dErrors.CodeIntentParse, "Invalid model response format: "+perr.Err.Error())
	}

	c.metrics.IncrementOutcome(metrics.OutcomeSuccess)
	c.logger.InfoContext(ctx, "intent extracted",
		"request_id", requestID,
		"form_type", result.FormType,
		"confidence", result.Confidence,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

func parseResponse(raw string) (*TransactionIntent, *ParseError) {
	data, err := ScrubPayload(raw)
	if err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	result, err := DecodeIntent(data)
	if err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return result, nil
}
