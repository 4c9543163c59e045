package ports

import "context"

// CompliancePort determines required disclosure forms.
type CompliancePort interface {
	Validate(ctx context.Context, req ComplianceRequest) (*Compliance, error)
}

// ComplianceRequest is the compliance service input (port model).
type ComplianceRequest struct {
	BuiltYear       *int
	Price           *float64
	Address         *string
	TransactionType string
	SubmittedForms  []string
}

// RequiredForm is a form the transaction must include.
type RequiredForm struct {
	Form     string
	Reason   string
	Priority string
}

// Recommendation is an optional form.
type Recommendation struct {
	Form   string
	Reason string
}

// Warning flags missing mandatory forms.
type Warning struct {
	Type    string
	Message string
	Forms   []string
}

// Compliance is the compliance service result (port model).
type Compliance struct {
	Compliant            bool
	RequiredForms        []RequiredForm
	Warnings             []Warning
	Recommendations      []Recommendation
	TotalRequired        int
	TotalRecommendations int
	CheckedAt            string
}
