package documentai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	documentai "google.golang.org/api/documentai/v1"
	"google.golang.org/api/option"

	"realeagent/internal/extraction"
	"realeagent/internal/provisioning"
	"realeagent/internal/upstream"
)

func newTestService(t *testing.T, h http.HandlerFunc) *documentai.Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	svc, err := documentai.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)
	return svc
}

func writeAPIError(w http.ResponseWriter, code int, status, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"code": code, "message": msg, "status": status},
	})
}

const processDocument = `{
  "document": {
    "text": "Seller: Jane Roe\nYear Built: 1962\n",
    "entities": [
      {"type": "seller_name", "mentionText": "Jane Roe", "confidence": 0.98},
      {"type": "built_year", "mentionText": "1962", "confidence": 0.91, "normalizedValue": {"text": "1962"}}
    ],
    "pages": [
      {"formFields": [
        {
          "fieldName": {"textAnchor": {"content": "Seller:"}, "confidence": 0.99},
          "fieldValue": {"textAnchor": {"content": "Jane Roe"}, "confidence": 0.95}
        },
        {
          "fieldName": {"textAnchor": {"textSegments": [{"startIndex": "17", "endIndex": "28"}]}},
          "fieldValue": {"textAnchor": {"textSegments": [{"startIndex": "29", "endIndex": "33"}]}, "confidence": 0.9}
        }
      ]},
      {}
    ]
  }
}`

func TestProcessorProcess(t *testing.T) {
	content := []byte("%PDF-1.7 lead paint")

	t.Run("maps the document", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/projects/demo/locations/us/processors/lp-1:process", r.URL.Path)

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			var req struct {
				RawDocument struct {
					Content  string `json:"content"`
					MimeType string `json:"mimeType"`
				} `json:"rawDocument"`
			}
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, base64.StdEncoding.EncodeToString(content), req.RawDocument.Content)
			assert.Equal(t, "application/pdf", req.RawDocument.MimeType)

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, processDocument)
		})

		doc, err := NewProcessor(svc).Process(context.Background(), extraction.ProcessRequest{
			ProcessorName: "projects/demo/locations/us/processors/lp-1",
			Content:       content,
			MimeType:      "application/pdf",
		})
		require.NoError(t, err)

		assert.Equal(t, 2, doc.PageCount)
		require.Len(t, doc.Entities, 2)
		assert.Nil(t, doc.Entities[0].NormalizedValue)
		require.NotNil(t, doc.Entities[1].NormalizedValue)
		assert.Equal(t, "1962", *doc.Entities[1].NormalizedValue)

		require.Len(t, doc.FormFields, 2)
		assert.Equal(t, extraction.FormField{Name: "Seller:", Value: "Jane Roe", Confidence: 0.95}, doc.FormFields[0])
		assert.Equal(t, "Year Built:", doc.FormFields[1].Name)
		assert.Equal(t, "1962", doc.FormFields[1].Value)
	})

	t.Run("classifies provider errors", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			writeAPIError(w, http.StatusTooManyRequests, "RESOURCE_EXHAUSTED", "quota exceeded")
		})

		_, err := NewProcessor(svc).Process(context.Background(), extraction.ProcessRequest{
			ProcessorName: "projects/demo/locations/us/processors/lp-1",
			Content:       content,
		})
		require.Error(t, err)
		assert.Equal(t, upstream.RateLimited, upstream.CategoryOf(err))
		assert.True(t, upstream.IsRetryable(err))
	})
}

func TestAdmin(t *testing.T) {
	const parent = "projects/demo/locations/us"

	t.Run("list follows pagination", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/"+parent+"/processors", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			if r.URL.Query().Get("pageToken") == "" {
				_, _ = io.WriteString(w, `{"processors":[{"name":"`+parent+`/processors/a","displayName":"RealeAgent BIA","type":"CUSTOM_EXTRACTION_PROCESSOR"}],"nextPageToken":"p2"}`)
				return
			}
			_, _ = io.WriteString(w, `{"processors":[{"name":"`+parent+`/processors/b","displayName":"RealeAgent Form Parser","type":"FORM_PARSER_PROCESSOR"}]}`)
		})

		got, err := NewAdmin(svc).ListProcessors(context.Background(), parent)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].ID())
		assert.Equal(t, "RealeAgent Form Parser", got[1].DisplayName)
	})

	t.Run("create", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "RealeAgent CA RPA", body["displayName"])
			assert.Equal(t, "CUSTOM_EXTRACTION_PROCESSOR", body["type"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"name":"`+parent+`/processors/rpa9","displayName":"RealeAgent CA RPA","type":"CUSTOM_EXTRACTION_PROCESSOR"}`)
		})

		got, err := NewAdmin(svc).CreateProcessor(context.Background(), parent, provisioning.StandardProcessors[1])
		require.NoError(t, err)
		assert.Equal(t, "rpa9", got.ID())
	})

	t.Run("duplicate create is a conflict", func(t *testing.T) {
		svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
			writeAPIError(w, http.StatusConflict, "ALREADY_EXISTS", "processor already exists")
		})

		_, err := NewAdmin(svc).CreateProcessor(context.Background(), parent, provisioning.StandardProcessors[1])
		require.Error(t, err)
		assert.Equal(t, upstream.Conflict, upstream.CategoryOf(err))
	})
}

func TestEndpoint(t *testing.T) {
	assert.Equal(t, "https://us-documentai.googleapis.com/", Endpoint("us"))
	assert.Equal(t, "projects/p/locations/eu", ParentName("p", "eu"))
}
