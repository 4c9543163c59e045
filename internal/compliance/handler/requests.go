package handler

import (
	"realeagent/internal/compliance"
	strutil "realeagent/pkg/platform/strings"
)

// ValidateRequest is the HTTP request body for POST /validate.
type ValidateRequest struct {
	PropertyDetails compliance.RawPropertyDetails `json:"property_details"`
	TransactionType string                        `json:"transaction_type"`
	SubmittedForms  []string                      `json:"submitted_forms"`
}

// Validate normalises the request. Numeric field checks belong to the
// service so they surface as evaluation errors.
func (r *ValidateRequest) Validate() error {
	r.SubmittedForms = strutil.DedupeAndTrim(r.SubmittedForms)
	return nil
}

// ToDomain converts the request to the service input.
func (r *ValidateRequest) ToDomain() compliance.ValidateRequest {
	return compliance.ValidateRequest{
		Details:         r.PropertyDetails,
		TransactionType: r.TransactionType,
		SubmittedForms:  r.SubmittedForms,
	}
}

// CheckTriggersRequest is the HTTP request body for POST /check_triggers.
type CheckTriggersRequest struct {
	PropertyDetails compliance.RawPropertyDetails `json:"property_details"`
}

// Validate implements httputil.Validatable.
func (r *CheckTriggersRequest) Validate() error {
	return nil
}
