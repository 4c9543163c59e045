package ports

import "context"

// ExtractionPort reshapes intent fields into a form-oriented summary.
type ExtractionPort interface {
	ExtractFromIntent(ctx context.Context, intent *Intent) (*Extraction, error)
}

// Extraction is the intent-derived extraction summary (port model).
type Extraction struct {
	Success           bool
	FormType          string
	ProcessorType     string
	PropertyAddress   *string
	Price             *float64
	BuiltYear         *int
	EscrowDays        *int
	Contingencies     []string
	RequiresLeadPaint bool
}
