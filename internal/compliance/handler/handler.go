package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"realeagent/internal/compliance"
	"realeagent/internal/platform/health"
	"realeagent/pkg/platform/httputil"
	"realeagent/pkg/requestcontext"
)

// ServiceName identifies the compliance validator in health responses.
const ServiceName = "compliance-validator"

// Service defines the interface for compliance operations.
type Service interface {
	Validate(ctx context.Context, req compliance.ValidateRequest) (*compliance.Result, error)
	CheckTriggers(ctx context.Context, raw compliance.RawPropertyDetails) (*compliance.TriggersResult, error)
}

// Handler wires compliance endpoints to the compliance service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a compliance handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts compliance endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/validate", h.HandleValidate)
	r.Post("/check_triggers", h.HandleCheckTriggers)
	health.Register(r, ServiceName, func() map[string]any {
		return map[string]any{"rules": len(compliance.Rules())}
	})
}

// HandleValidate handles POST /validate requests.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.Validate(ctx, req.ToDomain())
	if err != nil {
		h.logger.ErrorContext(ctx, "compliance validation failed",
			"request_id", requestID,
			"transaction_type", req.TransactionType,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleCheckTriggers handles POST /check_triggers requests.
func (h *Handler) HandleCheckTriggers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[CheckTriggersRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result, err := h.service.CheckTriggers(ctx, req.PropertyDetails)
	if err != nil {
		h.logger.ErrorContext(ctx, "trigger check failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromTriggers(result))
}
