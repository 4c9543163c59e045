package provisioning

import (
	"strings"

	"realeagent/internal/extraction"
)

// Processor types offered by the provider.
const (
	TypeCustomExtraction = "CUSTOM_EXTRACTION_PROCESSOR"
	TypeFormParser       = "FORM_PARSER_PROCESSOR"
)

// Status reports how Ensure satisfied a spec.
type Status string

const (
	StatusCreated  Status = "created"
	StatusExisting Status = "existing"
)

// Spec describes one processor to provision.
type Spec struct {
	Key         extraction.DocumentType
	DisplayName string
	Type        string
	Description string
}

// StandardProcessors are the processors the extractor routes to.
var StandardProcessors = []Spec{
	{
		Key:         extraction.DocumentLeadPaint,
		DisplayName: "RealeAgent Lead Paint Disclosure",
		Type:        TypeCustomExtraction,
		Description: "Extract fields from Lead-Based Paint Disclosure forms",
	},
	{
		Key:         extraction.DocumentCARPA,
		DisplayName: "RealeAgent CA RPA",
		Type:        TypeCustomExtraction,
		Description: "Extract fields from California Residential Purchase Agreement",
	},
	{
		Key:         extraction.DocumentBIA,
		DisplayName: "RealeAgent BIA",
		Type:        TypeCustomExtraction,
		Description: "Extract fields from Buyer's Inspection Advisory",
	},
	{
		Key:         extraction.DocumentFormParser,
		DisplayName: "RealeAgent Form Parser",
		Type:        TypeFormParser,
		Description: "General form parsing for other CAR forms",
	},
}

// Processor is a provider processor resource.
type Processor struct {
	// Name is projects/{p}/locations/{l}/processors/{id}.
	Name        string
	DisplayName string
	Type        string
}

// ID is the last segment of the resource name.
func (p Processor) ID() string {
	return p.Name[strings.LastIndex(p.Name, "/")+1:]
}

// Result is the outcome of provisioning one spec.
type Result struct {
	Key    extraction.DocumentType
	Name   string
	ID     string
	Type   string
	Status Status
}
