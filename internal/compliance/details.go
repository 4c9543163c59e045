package compliance

import (
	"encoding/json"
	"errors"
	"strings"

	dErrors "realeagent/pkg/domain-errors"
	"realeagent/pkg/platform/numeric"
)

const (
	FieldBuiltYear = "property_details.built_year"
	FieldPrice     = "property_details.price"
)

// RawPropertyDetails carries the numeric fields undecoded so callers may send
// numbers or numeric strings.
type RawPropertyDetails struct {
	BuiltYear json.RawMessage `json:"built_year,omitempty"`
	Price     json.RawMessage `json:"price,omitempty"`
	Address   *string         `json:"address,omitempty"`
}

// ParsePropertyDetails decodes raw into PropertyDetails. Malformed values fail
// with a validation error naming the field; nothing is coerced.
func ParsePropertyDetails(raw RawPropertyDetails) (PropertyDetails, error) {
	year, err := numeric.Int(raw.BuiltYear)
	if err != nil {
		return PropertyDetails{}, fieldError(FieldBuiltYear, err)
	}

	price, err := numeric.Float(raw.Price)
	if err != nil {
		return PropertyDetails{}, fieldError(FieldPrice, err)
	}
	if price != nil && *price < 0 {
		return PropertyDetails{}, dErrors.Validation(FieldPrice, "must not be negative")
	}

	details := PropertyDetails{BuiltYear: year, Price: price}
	if raw.Address != nil {
		if addr := strings.TrimSpace(*raw.Address); addr != "" {
			details.Address = &addr
		}
	}
	return details, nil
}

func fieldError(field string, err error) error {
	switch {
	case errors.Is(err, numeric.ErrNotInteger):
		return dErrors.Validation(field, numeric.ErrNotInteger.Error())
	default:
		return dErrors.Validation(field, numeric.ErrNotNumber.Error())
	}
}
