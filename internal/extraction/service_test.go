package extraction_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"realeagent/internal/extraction"
	"realeagent/internal/extraction/metrics"
	"realeagent/internal/extraction/mocks"
	dErrors "realeagent/pkg/domain-errors"
	"realeagent/pkg/platform/sentinel"
)

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks DocumentProcessor
type ServiceSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	processor *mocks.MockDocumentProcessor
	metrics   *metrics.Metrics
	service   *extraction.Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.processor = mocks.NewMockDocumentProcessor(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	registry := extraction.NewProcessorRegistry(map[extraction.DocumentType]string{
		extraction.DocumentLeadPaint:  "lp-1",
		extraction.DocumentFormParser: "fp-1",
	})
	s.service = extraction.NewService(s.processor, registry, "demo", "us",
		extraction.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		extraction.WithMetrics(s.metrics),
	)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) TestExtractFromDocument() {
	ctx := context.Background()

	s.Run("routes to the configured processor", func() {
		s.processor.EXPECT().
			Process(gomock.Any(), extraction.ProcessRequest{
				ProcessorName: "projects/demo/locations/us/processors/lp-1",
				Content:       []byte("%PDF"),
				MimeType:      "application/pdf",
			}).
			Return(&extraction.ProcessedDocument{
				Text:      "Seller discloses no known lead-based paint",
				Entities:  []extraction.Entity{{Type: "seller_name", Text: "Jane Roe", Confidence: 0.97}},
				PageCount: 2,
			}, nil)

		doc, err := s.service.ExtractFromDocument(ctx, []byte("%PDF"), "lead_paint", "")
		s.Require().NoError(err)
		s.Equal("lp-1", doc.ProcessorUsed)
		s.Equal(2, doc.PageCount)
		s.Len(doc.Entities, 1)
		s.NotNil(doc.FormFields)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Documents.WithLabelValues("lead_paint", "success")))
	})

	s.Run("unknown type falls back to the form parser", func() {
		s.processor.EXPECT().
			Process(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req extraction.ProcessRequest) (*extraction.ProcessedDocument, error) {
				s.Equal("projects/demo/locations/us/processors/fp-1", req.ProcessorName)
				s.Equal("image/png", req.MimeType)
				return &extraction.ProcessedDocument{}, nil
			})

		doc, err := s.service.ExtractFromDocument(ctx, []byte("png"), "tax_return", "image/png")
		s.Require().NoError(err)
		s.Equal("fp-1", doc.ProcessorUsed)
	})

	s.Run("empty content never reaches the processor", func() {
		_, err := s.service.ExtractFromDocument(ctx, nil, "lead_paint", "")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("document_content", dErrors.FieldOf(err))
	})

	s.Run("type without a processor id", func() {
		_, err := s.service.ExtractFromDocument(ctx, []byte("%PDF"), "ca_rpa", "")
		s.Require().Error(err)
		s.Equal(dErrors.CodeExtractionService, dErrors.CodeOf(err))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("processor failure", func() {
		boom := errors.New("quota exhausted")
		s.processor.EXPECT().Process(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := s.service.ExtractFromDocument(ctx, []byte("%PDF"), "", "")
		s.Require().Error(err)
		s.Equal(dErrors.CodeExtractionService, dErrors.CodeOf(err))
		s.ErrorIs(err, boom)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Documents.WithLabelValues("form_parser", "error")))
	})
}

func (s *ServiceSuite) TestExtractFromIntent() {
	ctx := context.Background()
	year := func(y int) *int { return &y }

	cases := []struct {
		name      string
		fields    extraction.IntentFields
		processor extraction.DocumentType
		formType  string
		leadPaint bool
	}{
		{"defaults to purchase agreement", extraction.IntentFields{BuiltYear: year(1960)}, extraction.DocumentCARPA, "purchase_agreement", true},
		{"lead paint disclosure", extraction.IntentFields{FormType: "lead_paint_disclosure", BuiltYear: year(1978)}, extraction.DocumentLeadPaint, "lead_paint_disclosure", false},
		{"inspection advisory", extraction.IntentFields{FormType: "inspection_advisory"}, extraction.DocumentBIA, "inspection_advisory", false},
		{"anything else", extraction.IntentFields{FormType: "other", BuiltYear: year(1977)}, extraction.DocumentFormParser, "other", true},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			got := s.service.ExtractFromIntent(ctx, tc.fields)
			s.True(got.Success)
			s.Equal(tc.processor, got.ProcessorType)
			s.Equal(tc.formType, got.FormType)
			s.Equal(tc.leadPaint, got.RequiresLeadPaint)
			s.NotNil(got.Data.Contingencies)
		})
	}
}
