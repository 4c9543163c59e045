package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil slice", input: nil, expected: nil},
		{name: "empty slice", input: []string{}, expected: []string{}},
		{
			name:     "trims and dedupes contingencies",
			input:    []string{"  inspection ", "loan", "inspection", "", "  "},
			expected: []string{"inspection", "loan"},
		},
		{
			name:     "preserves case",
			input:    []string{"Appraisal", "appraisal"},
			expected: []string{"Appraisal", "appraisal"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestNormalizeIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{name: "nil slice", input: nil, expected: nil},
		{
			name:     "lowercases, trims and dedupes form ids",
			input:    []string{" Natural_Hazard_Disclosure", "natural_hazard_disclosure", "SMOKE_DETECTOR_COMPLIANCE"},
			expected: []string{"natural_hazard_disclosure", "smoke_detector_compliance"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdentifiers(tt.input))
		})
	}
}

func TestSet(t *testing.T) {
	set := Set([]string{"a", "b"})
	assert.Len(t, set, 2)
	_, ok := set["a"]
	assert.True(t, ok)
	_, ok = set["c"]
	assert.False(t, ok)
}
