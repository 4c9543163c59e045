package handler

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"

	"realeagent/internal/extraction"
	dErrors "realeagent/pkg/domain-errors"
	"realeagent/pkg/platform/numeric"
	strutil "realeagent/pkg/platform/strings"
)

// ExtractRequest is the HTTP request body for POST /extract.
type ExtractRequest struct {
	DocumentContent string `json:"document_content"`
	DocumentType    string `json:"document_type"`
	MimeType        string `json:"mime_type"`

	content []byte
}

// Validate decodes the base64 content.
func (r *ExtractRequest) Validate() error {
	encoded := strings.TrimSpace(r.DocumentContent)
	if encoded == "" {
		return dErrors.Validation("document_content", "is required")
	}
	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return dErrors.Validation("document_content", "must be base64 encoded")
	}
	if len(content) == 0 {
		return dErrors.Validation("document_content", "is required")
	}
	r.content = content
	return nil
}

// Content returns the decoded document bytes.
func (r *ExtractRequest) Content() []byte {
	return r.content
}

// IntentData carries intent fields; numbers may arrive as strings.
type IntentData struct {
	FormType        string          `json:"form_type"`
	PropertyAddress *string         `json:"property_address"`
	Price           json.RawMessage `json:"price"`
	BuiltYear       json.RawMessage `json:"built_year"`
	EscrowDays      json.RawMessage `json:"escrow_days"`
	Contingencies   []string        `json:"contingencies"`
}

// ExtractFromIntentRequest is the HTTP request body for POST /extract_from_intent.
type ExtractFromIntentRequest struct {
	IntentData IntentData `json:"intent_data"`

	fields extraction.IntentFields
}

// Validate parses the numeric intent fields.
func (r *ExtractFromIntentRequest) Validate() error {
	d := r.IntentData
	price, err := numeric.Float(d.Price)
	if err != nil {
		return fieldError("intent_data.price", err)
	}
	builtYear, err := numeric.Int(d.BuiltYear)
	if err != nil {
		return fieldError("intent_data.built_year", err)
	}
	escrowDays, err := numeric.Int(d.EscrowDays)
	if err != nil {
		return fieldError("intent_data.escrow_days", err)
	}

	r.fields = extraction.IntentFields{
		FormType:        strings.TrimSpace(d.FormType),
		PropertyAddress: d.PropertyAddress,
		Price:           price,
		BuiltYear:       builtYear,
		EscrowDays:      escrowDays,
		Contingencies:   strutil.DedupeAndTrim(d.Contingencies),
	}
	return nil
}

// ToDomain returns the parsed intent fields.
func (r *ExtractFromIntentRequest) ToDomain() extraction.IntentFields {
	return r.fields
}

func fieldError(field string, err error) error {
	msg := numeric.ErrNotNumber.Error()
	if errors.Is(err, numeric.ErrNotInteger) {
		msg = numeric.ErrNotInteger.Error()
	}
	return dErrors.Validation(field, msg)
}
