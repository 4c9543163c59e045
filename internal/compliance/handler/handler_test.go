package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realeagent/internal/compliance"
	"realeagent/pkg/testutil"
)

var checkedAt = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

func newComplianceRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := chi.NewRouter()
	New(compliance.NewService(compliance.WithLogger(logger)), logger).Register(r)
	return r
}

func TestHandleValidate(t *testing.T) {
	router := newComplianceRouter(t)

	t.Run("old property with nothing submitted", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/validate", map[string]any{
			"property_details": map[string]any{"built_year": 1960, "price": 500000},
			"submitted_forms":  []string{},
		})
		rr := testutil.DoRequest(router, testutil.WithRequestTime(req, checkedAt))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := testutil.UnmarshalResponse[ValidateResponse](t, rr)
		assert.False(t, resp.Compliant)
		assert.Len(t, resp.RequiredForms, 5)
		require.Len(t, resp.Warnings, 1)
		assert.Equal(t, "missing_forms", resp.Warnings[0].Type)
		assert.Len(t, resp.Warnings[0].Forms, 5)
		assert.Equal(t, "2026-05-04T09:30:00Z", resp.Summary.CheckedAt)
		assert.Equal(t, 5, resp.Summary.TotalRequired)
	})

	t.Run("luxury property with standard forms submitted", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/validate", map[string]any{
			"property_details": map[string]any{"built_year": "2005", "price": "1500000"},
			"submitted_forms": []string{
				"natural_hazard_disclosure",
				"transfer_disclosure_statement",
				"water_heater_compliance",
				"smoke_detector_compliance",
			},
		})
		rr := testutil.DoRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		resp := testutil.UnmarshalResponse[ValidateResponse](t, rr)
		assert.True(t, resp.Compliant)
		assert.True(t, resp.Summary.IsCompliant)
		assert.Empty(t, resp.Warnings)
		assert.Contains(t, resp.Recommendations, RecommendationResponse{
			Form:   "luxury_property_addendum",
			Reason: "High-value property may benefit from additional protections",
		})
	})

	t.Run("malformed year is an evaluation error", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/validate", `{"property_details":{"built_year":"circa 1900"}}`)
		rr := testutil.DoRequest(router, req)

		body := testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "compliance_evaluation_error")
		assert.Contains(t, body["error_description"], "property_details.built_year")
	})

	t.Run("invalid json is a bad request", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodPost, "/validate", `{"property_details":`))
		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}

func TestHandleCheckTriggers(t *testing.T) {
	router := newComplianceRouter(t)

	t.Run("old property triggers lead paint", func(t *testing.T) {
		req := testutil.NewJSONRequest(t, http.MethodPost, "/check_triggers", map[string]any{
			"property_details": map[string]any{"built_year": 1950},
		})
		rr := testutil.DoRequest(router, req)

		require.Equal(t, http.StatusOK, rr.Code)
		resp := testutil.UnmarshalResponse[CheckTriggersResponse](t, rr)
		assert.Equal(t, 4, resp.TotalTriggers)
		require.Len(t, resp.TriggeredRules, 4)
		assert.Equal(t, "lead_paint", resp.TriggeredRules[0].Rule)
		assert.Equal(t, "built_before_1978", resp.TriggeredRules[0].Details.Trigger)
		require.NotNil(t, resp.PropertyDetails.BuiltYear)
		assert.Equal(t, 1950, *resp.PropertyDetails.BuiltYear)
	})

	t.Run("no details triggers the constant rules", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/check_triggers", map[string]any{}))

		require.Equal(t, http.StatusOK, rr.Code)
		resp := testutil.UnmarshalResponse[CheckTriggersResponse](t, rr)
		assert.Equal(t, 3, resp.TotalTriggers)
	})

	t.Run("malformed price", func(t *testing.T) {
		req := testutil.NewRequestWithBody(t, http.MethodPost, "/check_triggers", `{"property_details":{"price":[1]}}`)
		rr := testutil.DoRequest(router, req)
		testutil.AssertStatusAndError(t, rr, http.StatusInternalServerError, "compliance_evaluation_error")
	})
}

func TestHealth(t *testing.T) {
	router := newComplianceRouter(t)
	rr := testutil.DoRequest(router, testutil.NewRequestWithBody(t, http.MethodGet, "/health", ""))

	require.Equal(t, http.StatusOK, rr.Code)
	resp := *testutil.UnmarshalResponse[map[string]any](t, rr)
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, ServiceName, resp["service"])
	assert.Equal(t, float64(len(compliance.Rules())), resp["rules"])
}
