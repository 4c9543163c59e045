package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"realeagent/internal/compliance"
	"realeagent/internal/orchestrator/metrics"
	"realeagent/internal/orchestrator/ports"
	dErrors "realeagent/pkg/domain-errors"
	"realeagent/pkg/requestcontext"
)

const tracerName = "realeagent/orchestrator"

// Service runs the intent, extraction and compliance stages in order.
type Service struct {
	intent     ports.IntentPort
	extraction ports.ExtractionPort
	compliance ports.CompliancePort
	logger     *slog.Logger
	metrics    *metrics.Metrics
	tracer     trace.Tracer
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

// WithTracer replaces the global tracer.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// NewService wires the pipeline ports.
func NewService(intent ports.IntentPort, extraction ports.ExtractionPort, compliance ports.CompliancePort, opts ...Option) *Service {
	s := &Service{
		intent:     intent,
		extraction: extraction,
		compliance: compliance,
		logger:     slog.Default(),
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run tracks one pipeline execution.
type run struct {
	requestID string
	state     State
}

// RunPipeline executes the pipeline for query. Intent and compliance failures
// fail the run; an extraction failure is recorded in Degraded.
func (s *Service) RunPipeline(ctx context.Context, query string) (*PipelineResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, dErrors.Validation("query", "is required")
	}

	ctx, span := s.tracer.Start(ctx, "pipeline.run")
	defer span.End()

	r := &run{requestID: requestcontext.RequestID(ctx), state: StateInit}
	result := &PipelineResult{Query: query, Degraded: []Stage{}}

	s.transition(ctx, r, StateIntentPending)
	var intent *ports.Intent
	err := s.stage(ctx, r, StageIntent, func(ctx context.Context) (err error) {
		intent, err = s.intent.ProcessQuery(ctx, query)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, span, r, StageIntent, err)
	}
	result.Intent = intent

	if intent.Usable() {
		s.transition(ctx, r, StateExtractionPending)
		var extraction *ports.Extraction
		err := s.stage(ctx, r, StageExtraction, func(ctx context.Context) (err error) {
			extraction, err = s.extraction.ExtractFromIntent(ctx, intent)
			return err
		})
		if err != nil {
			s.logger.WarnContext(ctx, "extraction degraded, continuing",
				"request_id", r.requestID,
				"stage", StageExtraction,
				"error", err,
			)
			result.Degraded = append(result.Degraded, StageExtraction)
		} else {
			result.Extraction = extraction
		}
	} else {
		s.transition(ctx, r, StateExtractionSkipped)
		s.metrics.ObserveStage(string(StageExtraction), metrics.OutcomeSkipped, 0)
	}

	s.transition(ctx, r, StateCompliancePending)
	var determination *ports.Compliance
	err = s.stage(ctx, r, StageCompliance, func(ctx context.Context) (err error) {
		determination, err = s.compliance.Validate(ctx, ports.ComplianceRequest{
			BuiltYear:       intent.BuiltYear,
			Price:           intent.Price,
			Address:         intent.PropertyAddress,
			TransactionType: DefaultTransactionType,
		})
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, span, r, StageCompliance, err)
	}
	result.Compliance = determination

	result.Success = true
	result.Summary = Summary{
		PropertyAddress:   intent.PropertyAddress,
		Price:             intent.Price,
		BuiltYear:         intent.BuiltYear,
		RequiresLeadPaint: compliance.RequiresLeadPaint(intent.BuiltYear),
		RequiredForms:     determination.RequiredForms,
		Recommendations:   determination.Recommendations,
	}

	s.transition(ctx, r, StateDone)
	s.metrics.IncrementPipeline(string(StateDone))
	span.SetAttributes(
		attribute.Bool("pipeline.compliant", determination.Compliant),
		attribute.Int("pipeline.degraded", len(result.Degraded)),
	)
	return result, nil
}

// stage runs fn inside a span and records its outcome.
func (s *Service) stage(ctx context.Context, r *run, stage Stage, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "pipeline."+string(stage),
		trace.WithAttributes(attribute.String("pipeline.stage", string(stage))),
	)
	defer span.End()

	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.ObserveStage(string(stage), metrics.OutcomeFailed, elapsed)
		return err
	}
	s.metrics.ObserveStage(string(stage), metrics.OutcomeSuccess, elapsed)
	s.logger.InfoContext(ctx, "stage completed",
		"request_id", r.requestID,
		"stage", stage,
		"duration_ms", elapsed.Milliseconds(),
	)
	return nil
}

func (s *Service) transition(ctx context.Context, r *run, to State) {
	s.logger.DebugContext(ctx, "pipeline transition",
		"request_id", r.requestID,
		"from", r.state,
		"to", to,
	)
	r.state = to
}

func (s *Service) fail(ctx context.Context, span trace.Span, r *run, stage Stage, err error) error {
	s.transition(ctx, r, StateFailed)
	s.metrics.IncrementPipeline(string(StateFailed))
	s.logger.ErrorContext(ctx, "pipeline failed",
		"request_id", r.requestID,
		"stage", stage,
		"error", err,
	)
	span.SetStatus(codes.Error, string(stage)+" stage failed")
	return dErrors.Wrap(&StageError{Stage: stage, Err: err}, dErrors.CodeUnavailable, fmt.Sprintf("%s stage failed", stage))
}
