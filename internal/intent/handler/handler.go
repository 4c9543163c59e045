package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"realeagent/internal/intent"
	"realeagent/internal/platform/health"
	"realeagent/pkg/platform/httputil"
	"realeagent/pkg/requestcontext"
)

// ServiceName identifies the intent service in health responses.
const ServiceName = "intent-processor"

// Service defines the interface for intent operations.
type Service interface {
	ExtractIntent(ctx context.Context, userInput string) (*intent.TransactionIntent, error)
	Info() intent.ModelInfo
}

// Handler wires intent endpoints. Errors use the {"detail"} envelope.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an intent handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts intent endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleRoot)
	r.Post("/process", h.HandleProcess)
	health.Register(r, ServiceName, func() map[string]any {
		info := h.service.Info()
		return map[string]any{
			"model":    info.Model,
			"project":  info.Project,
			"location": info.Location,
		}
	})
}

// ProcessRequest is the HTTP request body for POST /process.
type ProcessRequest struct {
	UserInput string `json:"user_input"`
	// Context is accepted for compatibility and not forwarded to the model.
	Context map[string]json.RawMessage `json:"context,omitempty"`
}

// IntentResponse is the HTTP response body for POST /process.
type IntentResponse struct {
	FormType        string   `json:"form_type"`
	PropertyAddress *string  `json:"property_address"`
	Price           *float64 `json:"price"`
	BuiltYear       *int     `json:"built_year"`
	EscrowDays      *int     `json:"escrow_days"`
	Contingencies   []string `json:"contingencies"`
	Confidence      float64  `json:"confidence"`
}

// FromIntent maps a TransactionIntent to its wire shape.
func FromIntent(t *intent.TransactionIntent) IntentResponse {
	return IntentResponse{
		FormType:        string(t.FormType),
		PropertyAddress: t.PropertyAddress,
		Price:           t.Price,
		BuiltYear:       t.BuiltYear,
		EscrowDays:      t.EscrowDays,
		Contingencies:   t.Contingencies,
		Confidence:      t.Confidence,
	}
}

// HandleRoot handles GET / requests.
func (h *Handler) HandleRoot(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "RealeAgent Intent Processor",
		"model":   h.service.Info().Model,
	})
}

// HandleProcess handles POST /process requests.
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, err := httputil.Decode[ProcessRequest](w, r)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to decode request",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteDetail(w, err)
		return
	}

	result, err := h.service.ExtractIntent(ctx, req.UserInput)
	if err != nil {
		h.logger.ErrorContext(ctx, "intent extraction failed",
			"request_id", requestID,
			"input_length", len(req.UserInput),
			"error", err,
		)
		httputil.WriteDetail(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, FromIntent(result))
}
