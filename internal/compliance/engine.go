package compliance

import (
	"strings"
	"time"

	strutil "realeagent/pkg/platform/strings"
)

// Evaluate applies the catalog to details. It is pure apart from now, which is
// only copied into the summary.
func Evaluate(details PropertyDetails, submittedForms []string, txType TransactionType, now time.Time) *Result {
	result := &Result{
		Compliant:       true,
		RequiredForms:   []RequiredForm{},
		Warnings:        []Warning{},
		Recommendations: []Recommendation{},
	}

	for _, rule := range catalog {
		if !rule.Applies(details, txType) {
			continue
		}
		switch rule.Priority {
		case PriorityMandatory:
			result.RequiredForms = append(result.RequiredForms, RequiredForm{
				Form:     rule.FormRequired,
				Reason:   rule.Reason,
				Priority: rule.Priority,
			})
		case PriorityRecommended:
			result.Recommendations = append(result.Recommendations, Recommendation{
				Form:   rule.FormRequired,
				Reason: rule.Reason,
			})
		}
	}

	submitted := strutil.Set(strutil.DedupeAndTrim(submittedForms))
	missing := []string{}
	for _, f := range result.RequiredForms {
		if _, ok := submitted[f.Form]; !ok {
			missing = append(missing, f.Form)
		}
	}
	if len(missing) > 0 {
		result.Compliant = false
		result.Warnings = append(result.Warnings, Warning{
			Type:    WarningMissingForms,
			Message: "Missing mandatory forms: " + strings.Join(missing, ", "),
			Forms:   missing,
		})
	}

	result.Summary = Summary{
		TotalRequired:        len(result.RequiredForms),
		TotalRecommendations: len(result.Recommendations),
		IsCompliant:          result.Compliant,
		CheckedAt:            now.UTC(),
	}
	return result
}

// ListTriggeredRules reports the diagnostic rules that fire for details.
// Form submission plays no part.
func ListTriggeredRules(details PropertyDetails) []TriggeredRule {
	triggered := []TriggeredRule{}
	for _, id := range diagnosticOrder {
		rule, ok := RuleByID(id)
		if !ok || !rule.Diagnostic || !rule.Applies(details, TransactionPurchase) {
			continue
		}
		triggered = append(triggered, TriggeredRule{
			Rule:      rule.ID,
			Triggered: true,
			Details: TriggerDetails{
				Trigger:      rule.Trigger,
				Description:  rule.Description,
				FormRequired: rule.FormRequired,
			},
		})
	}
	return triggered
}

// NormalizeTransactionType maps raw input onto a known type. Empty and
// unrecognised values become purchase.
func NormalizeTransactionType(raw string) TransactionType {
	switch t := TransactionType(strings.ToLower(strings.TrimSpace(raw))); t {
	case TransactionPurchase, TransactionSale, TransactionLease, TransactionRefinance:
		return t
	default:
		return TransactionPurchase
	}
}
