package adapters

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"realeagent/internal/orchestrator/ports"
	"realeagent/internal/upstream"
	"realeagent/pkg/requestcontext"
)

func newUpstream(t *testing.T, h http.HandlerFunc) string {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv.URL + "/"
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func sampledContext(t *testing.T) context.Context {
	t.Helper()
	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID, TraceFlags: trace.FlagsSampled})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	return requestcontext.WithRequestID(ctx, "req-42")
}

func TestIntentClient(t *testing.T) {
	t.Run("forwards the query with request id and trace context", func(t *testing.T) {
		url := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/process", r.URL.Path)
			assert.Equal(t, "req-42", r.Header.Get("X-Request-ID"))
			assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", r.Header.Get("traceparent"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Buy 42 Elm St built 1965", body["user_input"])

			writeJSON(w, http.StatusOK, `{"form_type":"purchase_agreement","property_address":"42 Elm St","price":null,"built_year":1965,"escrow_days":null,"contingencies":[],"confidence":0.9}`)
		})

		client := NewIntentClient(url, time.Second, WithPropagator(propagation.TraceContext{}))
		got, err := client.ProcessQuery(sampledContext(t), "Buy 42 Elm St built 1965")
		require.NoError(t, err)
		assert.Equal(t, "42 Elm St", *got.PropertyAddress)
		assert.Equal(t, 1965, *got.BuiltYear)
		assert.Nil(t, got.Price)
	})

	t.Run("detail envelope becomes the upstream message", func(t *testing.T) {
		url := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusInternalServerError, `{"detail":"Invalid model response format: no JSON object found"}`)
		})

		_, err := NewIntentClient(url, time.Second).ProcessQuery(context.Background(), "q")
		require.Error(t, err)
		assert.Equal(t, upstream.Outage, upstream.CategoryOf(err))
		assert.Contains(t, err.Error(), "no JSON object found")
	})

	t.Run("bounded wait", func(t *testing.T) {
		release := make(chan struct{})
		url := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		})
		defer close(release)

		_, err := NewIntentClient(url, 20*time.Millisecond).ProcessQuery(context.Background(), "q")
		require.Error(t, err)
		assert.Equal(t, upstream.Timeout, upstream.CategoryOf(err))
	})

	t.Run("undecodable body", func(t *testing.T) {
		url := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, `<html>`)
		})

		_, err := NewIntentClient(url, time.Second).ProcessQuery(context.Background(), "q")
		assert.Equal(t, upstream.BadData, upstream.CategoryOf(err))
	})
}

func TestExtractionClient(t *testing.T) {
	url := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/extract_from_intent", r.URL.Path)
		var body struct {
			IntentData map[string]any `json:"intent_data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 1965.0, body.IntentData["built_year"])

		writeJSON(w, http.StatusOK, `{"success":true,"form_type":"purchase_agreement","processor_type":"ca_rpa","extracted_data":{"property_address":"42 Elm St","price":null,"built_year":1965,"escrow_days":30,"contingencies":["inspection"]},"requires_lead_paint":true}`)
	})

	year, address := 1965, "42 Elm St"
	got, err := NewExtractionClient(url, time.Second).ExtractFromIntent(context.Background(), &ports.Intent{
		FormType:        "purchase_agreement",
		PropertyAddress: &address,
		BuiltYear:       &year,
	})
	require.NoError(t, err)
	assert.True(t, got.Success)
	assert.Equal(t, "ca_rpa", got.ProcessorType)
	assert.Equal(t, 30, *got.EscrowDays)
	assert.True(t, got.RequiresLeadPaint)
}

func TestComplianceClient(t *testing.T) {
	t.Run("maps the result", func(t *testing.T) {
		url := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/validate", r.URL.Path)
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "purchase", body["transaction_type"])
			assert.Equal(t, []any{}, body["submitted_forms"])

			writeJSON(w, http.StatusOK, `{
				"compliant": false,
				"required_forms": [{"form":"lead_paint_disclosure","reason":"Property built before 1978 - Federal requirement","priority":"mandatory"}],
				"warnings": [{"type":"missing_forms","message":"Missing mandatory forms: lead_paint_disclosure","forms":["lead_paint_disclosure"]}],
				"recommendations": [{"form":"buyers_inspection_advisory","reason":"Recommended to inform buyer of inspection rights"}],
				"summary": {"total_required":1,"total_recommendations":1,"is_compliant":false,"checked_at":"2026-05-04T09:30:00Z"}
			}`)
		})

		year := 1960
		got, err := NewComplianceClient(url, time.Second).Validate(context.Background(), ports.ComplianceRequest{
			BuiltYear:       &year,
			TransactionType: "purchase",
		})
		require.NoError(t, err)
		assert.False(t, got.Compliant)
		require.Len(t, got.RequiredForms, 1)
		assert.Equal(t, "mandatory", got.RequiredForms[0].Priority)
		assert.Equal(t, []string{"lead_paint_disclosure"}, got.Warnings[0].Forms)
		assert.Equal(t, "2026-05-04T09:30:00Z", got.CheckedAt)
	})

	t.Run("error envelope", func(t *testing.T) {
		url := newUpstream(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusInternalServerError, `{"error":"compliance_evaluation_error","error_description":"property_details.price must be a number"}`)
		})

		_, err := NewComplianceClient(url, time.Second).Validate(context.Background(), ports.ComplianceRequest{})
		require.Error(t, err)
		var ue *upstream.Error
		require.ErrorAs(t, err, &ue)
		assert.Equal(t, http.StatusInternalServerError, ue.Status)
		assert.Contains(t, ue.Message, "property_details.price")
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := NewComplianceClient(url, time.Second).Validate(context.Background(), ports.ComplianceRequest{})
		assert.Equal(t, upstream.Outage, upstream.CategoryOf(err))
	})
}
