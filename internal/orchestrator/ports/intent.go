package ports

import "context"

// IntentPort turns a free-text query into transaction fields.
type IntentPort interface {
	ProcessQuery(ctx context.Context, query string) (*Intent, error)
}

// Intent is the intent service result (port model).
type Intent struct {
	FormType        string
	PropertyAddress *string
	Price           *float64
	BuiltYear       *int
	EscrowDays      *int
	Contingencies   []string
	Confidence      float64
}

// Usable reports whether the intent names anything worth extracting.
func (i *Intent) Usable() bool {
	return i != nil && (i.PropertyAddress != nil || i.Price != nil || i.BuiltYear != nil)
}
