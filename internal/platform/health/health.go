package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"realeagent/pkg/platform/httputil"
)

// Register mounts GET /health. extra, when non-nil, contributes additional
// fields to the body.
func Register(r chi.Router, service string, extra func() map[string]any) {
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		body := map[string]any{}
		if extra != nil {
			for k, v := range extra() {
				body[k] = v
			}
		}
		body["status"] = "healthy"
		body["service"] = service
		httputil.WriteJSON(w, http.StatusOK, body)
	})
}
