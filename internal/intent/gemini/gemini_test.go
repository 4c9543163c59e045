package gemini

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realeagent/internal/upstream"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) *Generator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	g, err := New(context.Background(), Config{APIKey: "test-key", Model: "gemini-test", BaseURL: srv.URL})
	require.NoError(t, err)
	return g
}

func TestNewRequiresCredentials(t *testing.T) {
	_, err := New(context.Background(), Config{})
	assert.Error(t, err)
}

func TestGenerate(t *testing.T) {
	var gotBody map[string]any
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"form_type\":\"purchase_agreement\"}"}]}}]}`)
	})

	text, err := g.Generate(context.Background(), "extract this")
	require.NoError(t, err)
	assert.Equal(t, `{"form_type":"purchase_agreement"}`, text)

	cfg, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok, "generation config sent")
	assert.Equal(t, "application/json", cfg["responseMimeType"])
	assert.Equal(t, "gemini_api", g.Info().Backend)
	assert.Equal(t, "gemini-test", g.Info().Model)
}

func TestGenerateEmptyResponse(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"candidates":[]}`)
	})

	text, err := g.Generate(context.Background(), "extract this")
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerateAPIError(t *testing.T) {
	g := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota exhausted","status":"RESOURCE_EXHAUSTED"}}`)
	})

	_, err := g.Generate(context.Background(), "extract this")
	require.Error(t, err)
	assert.Equal(t, upstream.RateLimited, upstream.CategoryOf(err))
	assert.True(t, upstream.IsRetryable(err))
}
