package intent

import "strings"

// FormType is the document family a request is about.
type FormType string

const (
	FormPurchaseAgreement   FormType = "purchase_agreement"
	FormLeadPaintDisclosure FormType = "lead_paint_disclosure"
	FormInspectionAdvisory  FormType = "inspection_advisory"
	FormOther               FormType = "other"
)

// ParseFormType maps model output onto a known form type. Empty input yields
// the purchase agreement default; anything unrecognised is other.
func ParseFormType(raw string) FormType {
	switch t := FormType(strings.ToLower(strings.TrimSpace(raw))); t {
	case "":
		return FormPurchaseAgreement
	case FormPurchaseAgreement, FormLeadPaintDisclosure, FormInspectionAdvisory, FormOther:
		return t
	default:
		return FormOther
	}
}

// DefaultConfidence is reported when the model omits a confidence score.
const DefaultConfidence = 0.9

// TransactionIntent is the structured reading of a free-text request.
// Optional fields are nil when the model did not find them.
type TransactionIntent struct {
	FormType        FormType
	PropertyAddress *string
	Price           *float64
	BuiltYear       *int
	EscrowDays      *int
	Contingencies   []string
	Confidence      float64
}

// ModelInfo describes the backing model for health and root endpoints.
type ModelInfo struct {
	Model    string
	Project  string
	Location string
	Backend  string
}
