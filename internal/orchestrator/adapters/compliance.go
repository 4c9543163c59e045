package adapters

import (
	"context"
	"time"

	compliancehandler "realeagent/internal/compliance/handler"
	"realeagent/internal/orchestrator/ports"
)

// ComplianceClient implements ports.CompliancePort against the validator.
type ComplianceClient struct {
	c *client
}

// NewComplianceClient targets the compliance validator at baseURL.
func NewComplianceClient(baseURL string, timeout time.Duration, opts ...Option) *ComplianceClient {
	return &ComplianceClient{c: newClient("compliance-validator", baseURL, timeout, opts...)}
}

type propertyDetails struct {
	BuiltYear *int     `json:"built_year"`
	Price     *float64 `json:"price"`
	Address   *string  `json:"address"`
}

type validateRequest struct {
	PropertyDetails propertyDetails `json:"property_details"`
	TransactionType string          `json:"transaction_type"`
	SubmittedForms  []string        `json:"submitted_forms"`
}

// Validate posts the property details to /validate.
func (a *ComplianceClient) Validate(ctx context.Context, in ports.ComplianceRequest) (*ports.Compliance, error) {
	submitted := in.SubmittedForms
	if submitted == nil {
		submitted = []string{}
	}
	req := validateRequest{
		PropertyDetails: propertyDetails{BuiltYear: in.BuiltYear, Price: in.Price, Address: in.Address},
		TransactionType: in.TransactionType,
		SubmittedForms:  submitted,
	}

	var resp compliancehandler.ValidateResponse
	if err := a.c.postJSON(ctx, "/validate", req, &resp); err != nil {
		return nil, err
	}

	out := &ports.Compliance{
		Compliant:            resp.Compliant,
		RequiredForms:        make([]ports.RequiredForm, 0, len(resp.RequiredForms)),
		Warnings:             make([]ports.Warning, 0, len(resp.Warnings)),
		Recommendations:      make([]ports.Recommendation, 0, len(resp.Recommendations)),
		TotalRequired:        resp.Summary.TotalRequired,
		TotalRecommendations: resp.Summary.TotalRecommendations,
		CheckedAt:            resp.Summary.CheckedAt,
	}
	for _, f := range resp.RequiredForms {
		out.RequiredForms = append(out.RequiredForms, ports.RequiredForm(f))
	}
	for _, w := range resp.Warnings {
		out.Warnings = append(out.Warnings, ports.Warning(w))
	}
	for _, r := range resp.Recommendations {
		out.Recommendations = append(out.Recommendations, ports.Recommendation(r))
	}
	return out, nil
}
