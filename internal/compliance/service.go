package compliance

import (
	"context"
	"log/slog"
	"time"

	"realeagent/internal/compliance/metrics"
	dErrors "realeagent/pkg/domain-errors"
	"realeagent/pkg/requestcontext"
)

// Service parses caller input and runs the rule engine.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics sets the service metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService builds the compliance service.
func NewService(opts ...Option) *Service {
	s := &Service{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate evaluates a transaction. Malformed property details surface as a
// compliance_evaluation_error wrapping the field-level validation error.
func (s *Service) Validate(ctx context.Context, req ValidateRequest) (*Result, error) {
	start := time.Now()
	details, err := s.parse(ctx, req.Details)
	if err != nil {
		return nil, err
	}

	txType := NormalizeTransactionType(req.TransactionType)
	result := Evaluate(details, req.SubmittedForms, txType, requestcontext.Now(ctx))

	s.metrics.IncrementEvaluation(result.Compliant)
	s.metrics.IncrementMissingForms(result.MissingForms())
	s.metrics.ObserveEvaluateLatency(time.Since(start))

	s.logger.InfoContext(ctx, "compliance evaluated",
		"request_id", requestcontext.RequestID(ctx),
		"transaction_type", txType,
		"compliant", result.Compliant,
		"total_required", result.Summary.TotalRequired,
		"missing_forms", len(result.MissingForms()),
	)
	return result, nil
}

// CheckTriggers lists the diagnostic rules that apply to raw.
func (s *Service) CheckTriggers(ctx context.Context, raw RawPropertyDetails) (*TriggersResult, error) {
	details, err := s.parse(ctx, raw)
	if err != nil {
		return nil, err
	}
	return &TriggersResult{Details: details, Rules: ListTriggeredRules(details)}, nil
}

func (s *Service) parse(ctx context.Context, raw RawPropertyDetails) (PropertyDetails, error) {
	details, err := ParsePropertyDetails(raw)
	if err != nil {
		field := dErrors.FieldOf(err)
		s.metrics.IncrementInvalidDetails(field)
		s.logger.WarnContext(ctx, "invalid property details",
			"request_id", requestcontext.RequestID(ctx),
			"field", field,
			"error", err,
		)
		return PropertyDetails{}, dErrors.Wrap(err, dErrors.CodeComplianceEvaluation, dErrors.MessageOf(err))
	}
	return details, nil
}
