package handler

import (
	compliancehandler "realeagent/internal/compliance/handler"
	extractionhandler "realeagent/internal/extraction/handler"
	intenthandler "realeagent/internal/intent/handler"
	"realeagent/internal/orchestrator"
	"realeagent/internal/orchestrator/ports"
)

// SummaryResponse condenses the pipeline outcome.
type SummaryResponse struct {
	PropertyAddress   *string                                    `json:"property_address"`
	Price             *float64                                   `json:"price"`
	BuiltYear         *int                                       `json:"built_year"`
	RequiresLeadPaint bool                                       `json:"requires_lead_paint"`
	RequiredForms     []compliancehandler.RequiredFormResponse   `json:"required_forms"`
	Recommendations   []compliancehandler.RecommendationResponse `json:"recommendations"`
}

// PipelineResponse is the HTTP response body for POST /process and /pipeline.
type PipelineResponse struct {
	Success    bool                                        `json:"success"`
	Query      string                                      `json:"query"`
	Intent     intenthandler.IntentResponse                `json:"intent"`
	Extraction *extractionhandler.IntentExtractionResponse `json:"extraction"`
	Compliance compliancehandler.ValidateResponse          `json:"compliance"`
	Summary    SummaryResponse                             `json:"summary"`
	Degraded   []string                                    `json:"degraded"`
}

// FromResult maps a pipeline result to its wire shape.
func FromResult(r *orchestrator.PipelineResult) PipelineResponse {
	resp := PipelineResponse{
		Success:    r.Success,
		Query:      r.Query,
		Intent:     fromIntent(r.Intent),
		Extraction: fromExtraction(r.Extraction),
		Compliance: fromCompliance(r.Compliance),
		Summary: SummaryResponse{
			PropertyAddress:   r.Summary.PropertyAddress,
			Price:             r.Summary.Price,
			BuiltYear:         r.Summary.BuiltYear,
			RequiresLeadPaint: r.Summary.RequiresLeadPaint,
			RequiredForms:     requiredForms(r.Summary.RequiredForms),
			Recommendations:   recommendations(r.Summary.Recommendations),
		},
		Degraded: make([]string, 0, len(r.Degraded)),
	}
	for _, stage := range r.Degraded {
		resp.Degraded = append(resp.Degraded, string(stage))
	}
	return resp
}

func fromIntent(i *ports.Intent) intenthandler.IntentResponse {
	contingencies := i.Contingencies
	if contingencies == nil {
		contingencies = []string{}
	}
	return intenthandler.IntentResponse{
		FormType:        i.FormType,
		PropertyAddress: i.PropertyAddress,
		Price:           i.Price,
		BuiltYear:       i.BuiltYear,
		EscrowDays:      i.EscrowDays,
		Contingencies:   contingencies,
		Confidence:      i.Confidence,
	}
}

func fromExtraction(x *ports.Extraction) *extractionhandler.IntentExtractionResponse {
	if x == nil {
		return nil
	}
	return &extractionhandler.IntentExtractionResponse{
		Success:       x.Success,
		FormType:      x.FormType,
		ProcessorType: x.ProcessorType,
		ExtractedData: extractionhandler.ExtractedDataResponse{
			PropertyAddress: x.PropertyAddress,
			Price:           x.Price,
			BuiltYear:       x.BuiltYear,
			EscrowDays:      x.EscrowDays,
			Contingencies:   x.Contingencies,
		},
		RequiresLeadPaint: x.RequiresLeadPaint,
	}
}

func fromCompliance(c *ports.Compliance) compliancehandler.ValidateResponse {
	resp := compliancehandler.ValidateResponse{
		Compliant:       c.Compliant,
		RequiredForms:   requiredForms(c.RequiredForms),
		Warnings:        make([]compliancehandler.WarningResponse, 0, len(c.Warnings)),
		Recommendations: recommendations(c.Recommendations),
		Summary: compliancehandler.SummaryResponse{
			TotalRequired:        c.TotalRequired,
			TotalRecommendations: c.TotalRecommendations,
			IsCompliant:          c.Compliant,
			CheckedAt:            c.CheckedAt,
		},
	}
	for _, w := range c.Warnings {
		resp.Warnings = append(resp.Warnings, compliancehandler.WarningResponse(w))
	}
	return resp
}

func requiredForms(in []ports.RequiredForm) []compliancehandler.RequiredFormResponse {
	out := make([]compliancehandler.RequiredFormResponse, 0, len(in))
	for _, f := range in {
		out = append(out, compliancehandler.RequiredFormResponse(f))
	}
	return out
}

func recommendations(in []ports.Recommendation) []compliancehandler.RecommendationResponse {
	out := make([]compliancehandler.RecommendationResponse, 0, len(in))
	for _, r := range in {
		out = append(out, compliancehandler.RecommendationResponse(r))
	}
	return out
}
