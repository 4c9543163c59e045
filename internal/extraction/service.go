package extraction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"realeagent/internal/compliance"
	"realeagent/internal/extraction/metrics"
	dErrors "realeagent/pkg/domain-errors"
	"realeagent/pkg/platform/sentinel"
	"realeagent/pkg/requestcontext"
)

// DocumentProcessor is the hosted document-field extraction capability.
type DocumentProcessor interface {
	Process(ctx context.Context, req ProcessRequest) (*ProcessedDocument, error)
}

// Service implements both extraction paths.
type Service struct {
	processor DocumentProcessor
	registry  *ProcessorRegistry
	project   string
	location  string
	logger    *slog.Logger
	metrics   *metrics.Metrics
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

// NewService builds the extraction service.
func NewService(processor DocumentProcessor, registry *ProcessorRegistry, project, location string, opts ...Option) *Service {
	s := &Service{
		processor: processor,
		registry:  registry,
		project:   project,
		location:  location,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Registry exposes the processor registry for health reporting.
func (s *Service) Registry() *ProcessorRegistry {
	return s.registry
}

// ProcessorName builds the fully qualified processor resource name.
func ProcessorName(project, location, id string) string {
	return fmt.Sprintf("projects/%s/locations/%s/processors/%s", project, location, id)
}

// ExtractFromDocument sends content to the processor selected by documentType.
func (s *Service) ExtractFromDocument(ctx context.Context, content []byte, documentType, mimeType string) (*Document, error) {
	requestID := requestcontext.RequestID(ctx)
	if len(content) == 0 {
		return nil, dErrors.Validation("document_content", "is required")
	}
	if strings.TrimSpace(mimeType) == "" {
		mimeType = DefaultMimeType
	}

	docType, known := ParseDocumentType(documentType)
	if !known {
		s.logger.WarnContext(ctx, "unknown document type, using form parser",
			"request_id", requestID,
			"document_type", documentType,
		)
	}
	id, ok := s.registry.Lookup(docType)
	if !ok {
		s.metrics.IncrementDocument(string(docType), "error")
		return nil, dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeExtractionService, fmt.Sprintf("no processor configured for document type %s", docType))
	}

	name := ProcessorName(s.project, s.location, id)
	s.logger.InfoContext(ctx, "processing document",
		"request_id", requestID,
		"processor", name,
		"mime_type", mimeType,
		"bytes", len(content),
	)

	start := time.Now()
	processed, err := s.processor.Process(ctx, ProcessRequest{ProcessorName: name, Content: content, MimeType: mimeType})
	s.metrics.ObserveProcessLatency(string(docType), time.Since(start))
	if err != nil {
		s.metrics.IncrementDocument(string(docType), "error")
		s.logger.ErrorContext(ctx, "document processing failed",
			"request_id", requestID,
			"processor", name,
			"error", err,
		)
		return nil, dErrors.Wrap(err, dErrors.CodeExtractionService, "document processing failed")
	}

	s.metrics.IncrementDocument(string(docType), "success")
	doc := &Document{
		ProcessorUsed: id,
		Text:          processed.Text,
		Entities:      processed.Entities,
		FormFields:    processed.FormFields,
		PageCount:     processed.PageCount,
	}
	if doc.Entities == nil {
		doc.Entities = []Entity{}
	}
	if doc.FormFields == nil {
		doc.FormFields = []FormField{}
	}
	return doc, nil
}

// formProcessors maps intent form types to processor types.
var formProcessors = map[string]DocumentType{
	"purchase_agreement":    DocumentCARPA,
	"lead_paint_disclosure": DocumentLeadPaint,
	"inspection_advisory":   DocumentBIA,
}

// ExtractFromIntent reshapes known intent fields. It makes no network call.
func (s *Service) ExtractFromIntent(ctx context.Context, fields IntentFields) *IntentExtraction {
	formType := strings.TrimSpace(fields.FormType)
	if formType == "" {
		formType = "purchase_agreement"
	}
	processorType, ok := formProcessors[formType]
	if !ok {
		processorType = DocumentFormParser
	}

	contingencies := fields.Contingencies
	if contingencies == nil {
		contingencies = []string{}
	}

	s.metrics.IncrementIntentExtraction(string(processorType))
	s.logger.InfoContext(ctx, "intent extraction",
		"request_id", requestcontext.RequestID(ctx),
		"form_type", formType,
		"processor_type", processorType,
	)
	return &IntentExtraction{
		Success:       true,
		FormType:      formType,
		ProcessorType: processorType,
		Data: ExtractedData{
			PropertyAddress: fields.PropertyAddress,
			Price:           fields.Price,
			BuiltYear:       fields.BuiltYear,
			EscrowDays:      fields.EscrowDays,
			Contingencies:   contingencies,
		},
		RequiresLeadPaint: compliance.RequiresLeadPaint(fields.BuiltYear),
	}
}
