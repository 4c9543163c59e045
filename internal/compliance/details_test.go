package compliance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "realeagent/pkg/domain-errors"
)

func TestParsePropertyDetails(t *testing.T) {
	t.Run("numbers and numeric strings", func(t *testing.T) {
		var raw RawPropertyDetails
		require.NoError(t, json.Unmarshal([]byte(`{"built_year":"1965","price":750000.5,"address":" 1 Main St "}`), &raw))

		details, err := ParsePropertyDetails(raw)
		require.NoError(t, err)
		require.NotNil(t, details.BuiltYear)
		require.NotNil(t, details.Price)
		require.NotNil(t, details.Address)
		assert.Equal(t, 1965, *details.BuiltYear)
		assert.Equal(t, 750000.5, *details.Price)
		assert.Equal(t, "1 Main St", *details.Address)
	})

	t.Run("absent and null", func(t *testing.T) {
		var raw RawPropertyDetails
		require.NoError(t, json.Unmarshal([]byte(`{"built_year":null}`), &raw))

		details, err := ParsePropertyDetails(raw)
		require.NoError(t, err)
		assert.Nil(t, details.BuiltYear)
		assert.Nil(t, details.Price)
		assert.Nil(t, details.Address)
	})

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"non-numeric year", `{"built_year":"old"}`, FieldBuiltYear},
		{"fractional year", `{"built_year":1965.5}`, FieldBuiltYear},
		{"boolean year", `{"built_year":true}`, FieldBuiltYear},
		{"non-numeric price", `{"price":"a lot"}`, FieldPrice},
		{"object price", `{"price":{"amount":1}}`, FieldPrice},
		{"negative price", `{"price":-1}`, FieldPrice},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var raw RawPropertyDetails
			require.NoError(t, json.Unmarshal([]byte(tt.body), &raw))

			_, err := ParsePropertyDetails(raw)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Equal(t, tt.field, dErrors.FieldOf(err))
		})
	}
}
