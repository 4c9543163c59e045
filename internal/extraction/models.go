package extraction

import "strings"

// DocumentType is the logical document family that selects a processor.
type DocumentType string

const (
	DocumentLeadPaint  DocumentType = "lead_paint"
	DocumentCARPA      DocumentType = "ca_rpa"
	DocumentBIA        DocumentType = "bia"
	DocumentFormParser DocumentType = "form_parser"
)

// DocumentTypes lists every known type in a stable order.
var DocumentTypes = []DocumentType{DocumentLeadPaint, DocumentCARPA, DocumentBIA, DocumentFormParser}

// ParseDocumentType maps raw input onto a known type. Empty and unknown values
// fall back to the generic form parser; known is false for unknown values.
func ParseDocumentType(raw string) (t DocumentType, known bool) {
	switch t := DocumentType(strings.ToLower(strings.TrimSpace(raw))); t {
	case "":
		return DocumentFormParser, true
	case DocumentLeadPaint, DocumentCARPA, DocumentBIA, DocumentFormParser:
		return t, true
	default:
		return DocumentFormParser, false
	}
}

// DefaultMimeType is assumed when the caller sends none.
const DefaultMimeType = "application/pdf"

// Entity is a typed span found by a processor.
type Entity struct {
	Type            string
	Text            string
	Confidence      float64
	NormalizedValue *string
}

// FormField is a key/value pair found by a form processor.
type FormField struct {
	Name       string
	Value      string
	Confidence float64
}

// ProcessRequest is one call to the document processor.
type ProcessRequest struct {
	ProcessorName string
	Content       []byte
	MimeType      string
}

// ProcessedDocument is what the document processor returns.
type ProcessedDocument struct {
	Text       string
	Entities   []Entity
	FormFields []FormField
	PageCount  int
}

// Document is the result of a direct document extraction.
type Document struct {
	ProcessorUsed string
	Text          string
	Entities      []Entity
	FormFields    []FormField
	PageCount     int
}

// IntentFields are the intent values the intent-derived extraction reshapes.
type IntentFields struct {
	FormType        string
	PropertyAddress *string
	Price           *float64
	BuiltYear       *int
	EscrowDays      *int
	Contingencies   []string
}

// ExtractedData mirrors the known intent fields.
type ExtractedData struct {
	PropertyAddress *string
	Price           *float64
	BuiltYear       *int
	EscrowDays      *int
	Contingencies   []string
}

// IntentExtraction is the result of the intent-derived extraction.
type IntentExtraction struct {
	Success           bool
	FormType          string
	ProcessorType     DocumentType
	Data              ExtractedData
	RequiresLeadPaint bool
}
