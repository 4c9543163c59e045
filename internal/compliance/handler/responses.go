package handler

import (
	"time"

	"realeagent/internal/compliance"
)

// ValidateResponse is the HTTP response body for POST /validate.
type ValidateResponse struct {
	Compliant       bool                     `json:"compliant"`
	RequiredForms   []RequiredFormResponse   `json:"required_forms"`
	Warnings        []WarningResponse        `json:"warnings"`
	Recommendations []RecommendationResponse `json:"recommendations"`
	Summary         SummaryResponse          `json:"summary"`
}

type RequiredFormResponse struct {
	Form     string `json:"form"`
	Reason   string `json:"reason"`
	Priority string `json:"priority"`
}

type WarningResponse struct {
	Type    string   `json:"type"`
	Message string   `json:"message"`
	Forms   []string `json:"forms"`
}

type RecommendationResponse struct {
	Form   string `json:"form"`
	Reason string `json:"reason"`
}

type SummaryResponse struct {
	TotalRequired        int    `json:"total_required"`
	TotalRecommendations int    `json:"total_recommendations"`
	IsCompliant          bool   `json:"is_compliant"`
	CheckedAt            string `json:"checked_at"`
}

// FromResult maps a compliance result to its wire shape.
func FromResult(r *compliance.Result) ValidateResponse {
	resp := ValidateResponse{
		Compliant:       r.Compliant,
		RequiredForms:   make([]RequiredFormResponse, 0, len(r.RequiredForms)),
		Warnings:        make([]WarningResponse, 0, len(r.Warnings)),
		Recommendations: make([]RecommendationResponse, 0, len(r.Recommendations)),
		Summary: SummaryResponse{
			TotalRequired:        r.Summary.TotalRequired,
			TotalRecommendations: r.Summary.TotalRecommendations,
			IsCompliant:          r.Summary.IsCompliant,
			CheckedAt:            r.Summary.CheckedAt.UTC().Format(time.RFC3339Nano),
		},
	}
	for _, f := range r.RequiredForms {
		resp.RequiredForms = append(resp.RequiredForms, RequiredFormResponse{
			Form:     f.Form,
			Reason:   f.Reason,
			Priority: string(f.Priority),
		})
	}
	for _, w := range r.Warnings {
		resp.Warnings = append(resp.Warnings, WarningResponse{Type: w.Type, Message: w.Message, Forms: w.Forms})
	}
	for _, rec := range r.Recommendations {
		resp.Recommendations = append(resp.Recommendations, RecommendationResponse{Form: rec.Form, Reason: rec.Reason})
	}
	return resp
}

// CheckTriggersResponse is the HTTP response body for POST /check_triggers.
type CheckTriggersResponse struct {
	PropertyDetails PropertyDetailsResponse `json:"property_details"`
	TriggeredRules  []TriggeredRuleResponse `json:"triggered_rules"`
	TotalTriggers   int                     `json:"total_triggers"`
}

type PropertyDetailsResponse struct {
	BuiltYear *int     `json:"built_year,omitempty"`
	Price     *float64 `json:"price,omitempty"`
	Address   *string  `json:"address,omitempty"`
}

type TriggeredRuleResponse struct {
	Rule      string                 `json:"rule"`
	Triggered bool                   `json:"triggered"`
	Details   TriggerDetailsResponse `json:"details"`
}

type TriggerDetailsResponse struct {
	Trigger      string `json:"trigger"`
	Description  string `json:"description"`
	FormRequired string `json:"form_required"`
}

// FromTriggers maps the trigger diagnostic to its wire shape.
func FromTriggers(t *compliance.TriggersResult) CheckTriggersResponse {
	resp := CheckTriggersResponse{
		PropertyDetails: PropertyDetailsResponse{
			BuiltYear: t.Details.BuiltYear,
			Price:     t.Details.Price,
			Address:   t.Details.Address,
		},
		TriggeredRules: make([]TriggeredRuleResponse, 0, len(t.Rules)),
		TotalTriggers:  len(t.Rules),
	}
	for _, r := range t.Rules {
		resp.TriggeredRules = append(resp.TriggeredRules, TriggeredRuleResponse{
			Rule:      r.Rule,
			Triggered: r.Triggered,
			Details: TriggerDetailsResponse{
				Trigger:      string(r.Details.Trigger),
				Description:  r.Details.Description,
				FormRequired: r.Details.FormRequired,
			},
		})
	}
	return resp
}
