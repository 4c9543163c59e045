package handler

import (
	"strings"

	dErrors "realeagent/pkg/domain-errors"
)

// PipelineRequest is the HTTP request body for POST /process and /pipeline.
type PipelineRequest struct {
	Query string `json:"query"`
}

// Validate implements httputil.Validatable.
func (r *PipelineRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return dErrors.Validation("query", "is required")
	}
	return nil
}
