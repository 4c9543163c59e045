package intent

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

	"realeagent/internal/intent/metrics"
	"realeagent/internal/intent/mocks"
	dErrors "realeagent/pkg/domain-errors"
)

//go:generate mockgen -source=client.go -destination=mocks/mocks.go -package=mocks Generator
type ClientSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	generator *mocks.MockGenerator
	metrics   *metrics.Metrics
	client    *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.generator = mocks.NewMockGenerator(s.ctrl)
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.client = NewClient(s.generator, ModelInfo{Model: "gemini-test"},
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithMetrics(s.metrics),
	)
}

func (s *ClientSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ClientSuite) TestExtractIntent() {
	ctx := context.Background()

	s.Run("fenced response", func() {
		s.generator.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string) (string, error) {
				s.Contains(prompt, "Buy 42 Elm St built 1965")
				return "```json\n{\"property_address\":\"42 Elm St\",\"built_year\":1965}\n```", nil
			})

		got, err := s.client.ExtractIntent(ctx, "Buy 42 Elm St built 1965")
		s.Require().NoError(err)
		s.Equal("42 Elm St", *got.PropertyAddress)
		s.Equal(1965, *got.BuiltYear)
		s.Equal(FormPurchaseAgreement, got.FormType)
		s.Equal(DefaultConfidence, got.Confidence)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Extractions.WithLabelValues(metrics.OutcomeSuccess)))
	})

	s.Run("empty input never calls the model", func() {
		_, err := s.client.ExtractIntent(ctx, "   ")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Equal("user_input", dErrors.FieldOf(err))
	})

	s.Run("model failure is a service error", func() {
		s.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded).Times(1)

		_, err := s.client.ExtractIntent(ctx, "Buy a house")
		s.Require().Error(err)
		s.Equal(dErrors.CodeIntentService, dErrors.CodeOf(err))
		s.ErrorIs(err, context.DeadlineExceeded)
	})

	s.Run("unparsable response carries raw text", func() {
		raw := "I could not find any transaction details."
		s.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(raw, nil)

		_, err := s.client.ExtractIntent(ctx, "hello")
		s.Require().Error(err)
		s.Equal(dErrors.CodeIntentParse, dErrors.CodeOf(err))

		var perr *ParseError
		s.Require().True(errors.As(err, &perr))
		s.Equal(raw, perr.Raw)
		s.ErrorIs(err, ErrNoPayload)
		s.Equal(1.0, testutil.ToFloat64(s.metrics.Extractions.WithLabelValues(metrics.OutcomeParseError)))
	})

	s.Run("empty response is a parse error", func() {
		s.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", nil)

		_, err := s.client.ExtractIntent(ctx, "Buy 12 Pine St")
		s.Require().Error(err)
		s.Equal(dErrors.CodeIntentParse, dErrors.CodeOf(err))

		var perr *ParseError
		s.Require().True(errors.As(err, &perr))
		s.Empty(perr.Raw)
		s.ErrorIs(err, ErrNoPayload)
	})

	s.Run("invalid values are parse errors", func() {
		s.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(`{"price": -100}`, nil)

		_, err := s.client.ExtractIntent(ctx, "Sell for negative money")
		s.Require().Error(err)
		s.Equal(dErrors.CodeIntentParse, dErrors.CodeOf(err))
		s.Contains(dErrors.MessageOf(err), "Invalid model response format")
	})
}
