package handler

import "realeagent/internal/extraction"

// EntityResponse is one extracted entity.
type EntityResponse struct {
	Type            string  `json:"type"`
	Text            string  `json:"text"`
	Confidence      float64 `json:"confidence"`
	NormalizedValue *string `json:"normalized_value,omitempty"`
}

// FormFieldResponse is one extracted form field.
type FormFieldResponse struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// ExtractResponse is the HTTP response body for POST /extract.
type ExtractResponse struct {
	Success       bool                `json:"success"`
	ProcessorUsed string              `json:"processor_used"`
	Text          string              `json:"text"`
	Entities      []EntityResponse    `json:"entities"`
	FormFields    []FormFieldResponse `json:"form_fields"`
	PageCount     int                 `json:"page_count"`
}

// ExtractedDataResponse mirrors the intent fields.
type ExtractedDataResponse struct {
	PropertyAddress *string  `json:"property_address"`
	Price           *float64 `json:"price"`
	BuiltYear       *int     `json:"built_year"`
	EscrowDays      *int     `json:"escrow_days"`
	Contingencies   []string `json:"contingencies"`
}

// IntentExtractionResponse is the HTTP response body for POST /extract_from_intent.
type IntentExtractionResponse struct {
	Success           bool                  `json:"success"`
	FormType          string                `json:"form_type"`
	ProcessorType     string                `json:"processor_type"`
	ExtractedData     ExtractedDataResponse `json:"extracted_data"`
	RequiresLeadPaint bool                  `json:"requires_lead_paint"`
}

// FromDocument maps a Document to its wire shape.
func FromDocument(d *extraction.Document) ExtractResponse {
	resp := ExtractResponse{
		Success:       true,
		ProcessorUsed: d.ProcessorUsed,
		Text:          d.Text,
		Entities:      make([]EntityResponse, 0, len(d.Entities)),
		FormFields:    make([]FormFieldResponse, 0, len(d.FormFields)),
		PageCount:     d.PageCount,
	}
	for _, e := range d.Entities {
		resp.Entities = append(resp.Entities, EntityResponse(e))
	}
	for _, f := range d.FormFields {
		resp.FormFields = append(resp.FormFields, FormFieldResponse(f))
	}
	return resp
}

// FromIntentExtraction maps an IntentExtraction to its wire shape.
func FromIntentExtraction(x *extraction.IntentExtraction) IntentExtractionResponse {
	return IntentExtractionResponse{
		Success:           x.Success,
		FormType:          x.FormType,
		ProcessorType:     string(x.ProcessorType),
		ExtractedData:     ExtractedDataResponse(x.Data),
		RequiresLeadPaint: x.RequiresLeadPaint,
	}
}
