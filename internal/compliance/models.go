package compliance

import "time"

// Priority separates forms that decide compliance from advisory ones.
type Priority string

const (
	PriorityMandatory   Priority = "mandatory"
	PriorityRecommended Priority = "recommended"
)

// TransactionType selects transaction-specific recommendations. It never
// affects required forms.
type TransactionType string

const (
	TransactionPurchase  TransactionType = "purchase"
	TransactionSale      TransactionType = "sale"
	TransactionLease     TransactionType = "lease"
	TransactionRefinance TransactionType = "refinance"
)

// PropertyDetails holds the attributes the rules look at. Nil means absent.
type PropertyDetails struct {
	BuiltYear *int
	Price     *float64
	Address   *string
}

// RequiredForm is a form demanded by a rule.
type RequiredForm struct {
	Form     string
	Reason   string
	Priority Priority
}

// Recommendation is an advisory form.
type Recommendation struct {
	Form   string
	Reason string
}

// WarningMissingForms is the only warning type the engine emits.
const WarningMissingForms = "missing_forms"

// Warning reports a compliance gap.
type Warning struct {
	Type    string
	Message string
	Forms   []string
}

// Summary condenses a Result.
type Summary struct {
	TotalRequired        int
	TotalRecommendations int
	IsCompliant          bool
	CheckedAt            time.Time
}

// Result is the outcome of one evaluation. Slices are never nil.
type Result struct {
	Compliant       bool
	RequiredForms   []RequiredForm
	Warnings        []Warning
	Recommendations []Recommendation
	Summary         Summary
}

// MissingForms returns the forms listed by the missing_forms warning, if any.
func (r *Result) MissingForms() []string {
	for _, w := range r.Warnings {
		if w.Type == WarningMissingForms {
			return w.Forms
		}
	}
	return []string{}
}

// TriggerDetails describes a triggered diagnostic rule.
type TriggerDetails struct {
	Trigger      Trigger
	Description  string
	FormRequired string
}

// TriggeredRule is one entry of the trigger diagnostic.
type TriggeredRule struct {
	Rule      string
	Triggered bool
	Details   TriggerDetails
}

// ValidateRequest is the service input for a full evaluation.
type ValidateRequest struct {
	Details         RawPropertyDetails
	TransactionType string
	SubmittedForms  []string
}

// TriggersResult is the service output of the trigger diagnostic.
type TriggersResult struct {
	Details PropertyDetails
	Rules   []TriggeredRule
}
