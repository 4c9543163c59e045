package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"realeagent/internal/extraction"
	"realeagent/internal/platform/health"
	"realeagent/pkg/platform/httputil"
	"realeagent/pkg/requestcontext"
)

// ServiceName identifies the extractor in health responses.
const ServiceName = "document-extractor"

// Service defines the interface for extraction operations.
type Service interface {
	ExtractFromDocument(ctx context.Context, content []byte, documentType, mimeType string) (*extraction.Document, error)
	ExtractFromIntent(ctx context.Context, fields extraction.IntentFields) *extraction.IntentExtraction
	Registry() *extraction.ProcessorRegistry
}

// Handler wires extraction endpoints.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an extraction handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts extraction endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/extract", h.HandleExtract)
	r.Post("/extract_from_intent", h.HandleExtractFromIntent)
	health.Register(r, ServiceName, func() map[string]any {
		registry := h.service.Registry()
		return map[string]any{
			"processors":         registry.IDs(),
			"missing_processors": registry.Missing(),
		}
	})
}

// HandleExtract handles POST /extract requests.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ExtractRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	doc, err := h.service.ExtractFromDocument(ctx, req.Content(), req.DocumentType, req.MimeType)
	if err != nil {
		h.logger.ErrorContext(ctx, "document extraction failed",
			"request_id", requestID,
			"document_type", req.DocumentType,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromDocument(doc))
}

// HandleExtractFromIntent handles POST /extract_from_intent requests.
func (h *Handler) HandleExtractFromIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ExtractFromIntentRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromIntentExtraction(h.service.ExtractFromIntent(ctx, req.ToDomain())))
}
