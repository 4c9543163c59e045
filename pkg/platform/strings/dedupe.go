// Package strings provides string slice normalisation shared by request DTOs.
package strings

import (
	"strings"
)

// DedupeAndTrim trims each element and drops empties and duplicates,
// preserving first-seen order. A nil or empty input is returned as-is.
//
//	DedupeAndTrim([]string{"  inspection ", "loan", "inspection", ""})
//	// []string{"inspection", "loan"}
func DedupeAndTrim(values []string) []string {
	return dedupe(values, strings.TrimSpace)
}

// NormalizeIdentifiers is DedupeAndTrim plus lowercasing, for form and rule
// identifiers that callers may send in any case.
//
//	NormalizeIdentifiers([]string{"Natural_Hazard_Disclosure", "natural_hazard_disclosure "})
//	// []string{"natural_hazard_disclosure"}
func NormalizeIdentifiers(values []string) []string {
	return dedupe(values, func(s string) string {
		return strings.ToLower(strings.TrimSpace(s))
	})
}

// Set builds a membership set from already-normalised values.
func Set(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func dedupe(values []string, norm func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		n := norm(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}
