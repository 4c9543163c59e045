package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"realeagent/internal/orchestrator"
	"realeagent/internal/platform/health"
	"realeagent/pkg/platform/httputil"
	"realeagent/pkg/requestcontext"
)

// ServiceName identifies the orchestrator in health responses.
const ServiceName = "orchestrator"

// Service defines the interface for pipeline operations.
type Service interface {
	RunPipeline(ctx context.Context, query string) (*orchestrator.PipelineResult, error)
}

// Dependencies are the upstream base URLs reported by /health.
type Dependencies struct {
	IntentProcessor     string
	DocumentExtractor   string
	ComplianceValidator string
}

// Handler wires orchestrator endpoints.
type Handler struct {
	service Service
	deps    Dependencies
	logger  *slog.Logger
}

// New constructs an orchestrator handler.
func New(service Service, deps Dependencies, logger *slog.Logger) *Handler {
	return &Handler{service: service, deps: deps, logger: logger}
}

// Register mounts orchestrator endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/process", h.HandlePipeline)
	r.Post("/pipeline", h.HandlePipeline)
	health.Register(r, ServiceName, func() map[string]any {
		return map[string]any{
			"dependencies": map[string]string{
				"intent_processor":     h.deps.IntentProcessor,
				"document_extractor":   h.deps.DocumentExtractor,
				"compliance_validator": h.deps.ComplianceValidator,
			},
		}
	})
}

// HandlePipeline handles POST /process and POST /pipeline requests.
func (h *Handler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[PipelineRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	h.logger.InfoContext(ctx, "processing query",
		"request_id", requestID,
		"query_length", len(req.Query),
	)
	result, err := h.service.RunPipeline(ctx, req.Query)
	if err != nil {
		h.logger.ErrorContext(ctx, "pipeline failed",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
