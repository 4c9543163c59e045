package compliance

import "slices"

// Trigger names the condition a rule fires on.
type Trigger string

const (
	TriggerBuiltBefore1978    Trigger = "built_before_1978"
	TriggerCaliforniaProperty Trigger = "california_property"
	TriggerAllProperties      Trigger = "all_properties"
	TriggerHighValue          Trigger = "high_value_property"
	TriggerPurchase           Trigger = "purchase_transaction"
)

const (
	// LeadPaintCutoffYear is the federal lead paint threshold: homes built
	// before it need the disclosure.
	LeadPaintCutoffYear = 1978

	// LuxuryPriceThreshold is the price above which the luxury addendum is
	// recommended.
	LuxuryPriceThreshold = 1_000_000

	standardReason = "Standard California requirement"
)

// Rule is one entry of the catalog.
type Rule struct {
	ID           string
	Trigger      Trigger
	Description  string
	FormRequired string
	Reason       string
	Priority     Priority
	// Diagnostic rules are reported by the trigger diagnostic.
	Diagnostic bool

	applies func(PropertyDetails, TransactionType) bool
}

// Applies reports whether the rule fires for the given inputs.
func (r Rule) Applies(details PropertyDetails, txType TransactionType) bool {
	return r.applies(details, txType)
}

// catalog is evaluated in slice order, which is the order forms are reported.
var catalog = []Rule{
	{
		ID:           "lead_paint",
		Trigger:      TriggerBuiltBefore1978,
		Description:  "Federal law requires Lead-Based Paint Disclosure for properties built before 1978",
		FormRequired: "lead_paint_disclosure",
		Reason:       "Property built before 1978 - Federal requirement",
		Priority:     PriorityMandatory,
		Diagnostic:   true,
		applies: func(d PropertyDetails, _ TransactionType) bool {
			return RequiresLeadPaint(d.BuiltYear)
		},
	},
	{
		ID:           "natural_hazard",
		Trigger:      TriggerCaliforniaProperty,
		Description:  "California requires Natural Hazard Disclosure Statement",
		FormRequired: "natural_hazard_disclosure",
		Reason:       "Required for all California properties",
		Priority:     PriorityMandatory,
		Diagnostic:   true,
		applies:      always,
	},
	{
		ID:           "transfer_disclosure",
		Trigger:      TriggerAllProperties,
		Description:  "California requires a Transfer Disclosure Statement for residential transfers",
		FormRequired: "transfer_disclosure_statement",
		Reason:       standardReason,
		Priority:     PriorityMandatory,
		applies:      always,
	},
	{
		ID:           "water_heater",
		Trigger:      TriggerAllProperties,
		Description:  "Water heater bracing compliance required",
		FormRequired: "water_heater_compliance",
		Reason:       standardReason,
		Priority:     PriorityMandatory,
		Diagnostic:   true,
		applies:      always,
	},
	{
		ID:           "smoke_detector",
		Trigger:      TriggerAllProperties,
		Description:  "California requires smoke detector compliance statement",
		FormRequired: "smoke_detector_compliance",
		Reason:       standardReason,
		Priority:     PriorityMandatory,
		Diagnostic:   true,
		applies:      always,
	},
	{
		ID:           "luxury_property",
		Trigger:      TriggerHighValue,
		Description:  "High-value properties may need additional contractual protections",
		FormRequired: "luxury_property_addendum",
		Reason:       "High-value property may benefit from additional protections",
		Priority:     PriorityRecommended,
		applies: func(d PropertyDetails, _ TransactionType) bool {
			return d.Price != nil && *d.Price > LuxuryPriceThreshold
		},
	},
	{
		ID:           "buyers_inspection",
		Trigger:      TriggerPurchase,
		Description:  "Buyers should be informed of their inspection rights",
		FormRequired: "buyers_inspection_advisory",
		Reason:       "Recommended to inform buyer of inspection rights",
		Priority:     PriorityRecommended,
		applies: func(_ PropertyDetails, t TransactionType) bool {
			return t == TransactionPurchase
		},
	},
}

// diagnosticOrder is the order the trigger diagnostic reports rules in.
var diagnosticOrder = []string{"lead_paint", "natural_hazard", "smoke_detector", "water_heater"}

func always(PropertyDetails, TransactionType) bool { return true }

// Rules returns a copy of the catalog in evaluation order.
func Rules() []Rule {
	return slices.Clone(catalog)
}

// RuleByID looks a rule up by its identifier.
func RuleByID(id string) (Rule, bool) {
	i := slices.IndexFunc(catalog, func(r Rule) bool { return r.ID == id })
	if i < 0 {
		return Rule{}, false
	}
	return catalog[i], true
}

// RequiresLeadPaint is the single lead paint policy: an absent year never
// triggers the disclosure.
func RequiresLeadPaint(builtYear *int) bool {
	return builtYear != nil && *builtYear < LeadPaintCutoffYear
}
