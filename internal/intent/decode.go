package intent

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"realeagent/pkg/platform/numeric"
	strutil "realeagent/pkg/platform/strings"
)

type payload struct {
	FormType        *string         `json:"form_type"`
	PropertyAddress *string         `json:"property_address"`
	Price           json.RawMessage `json:"price"`
	BuiltYear       json.RawMessage `json:"built_year"`
	EscrowDays      json.RawMessage `json:"escrow_days"`
	Contingencies   []string        `json:"contingencies"`
	Confidence      json.RawMessage `json:"confidence"`
}

// DecodeIntent decodes a scrubbed payload and applies defaults.
func DecodeIntent(data string) (*TransactionIntent, error) {
	var p payload
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, err
	}

	out := &TransactionIntent{
		FormType:      FormPurchaseAgreement,
		Contingencies: []string{},
		Confidence:    DefaultConfidence,
	}
	if p.FormType != nil {
		out.FormType = ParseFormType(*p.FormType)
	}
	if p.PropertyAddress != nil {
		if addr := strings.TrimSpace(*p.PropertyAddress); addr != "" {
			out.PropertyAddress = &addr
		}
	}

	var err error
	if out.Price, err = numeric.Float(p.Price); err != nil {
		return nil, fmt.Errorf("price: %w", err)
	}
	if out.Price != nil && *out.Price < 0 {
		return nil, errors.New("price: must not be negative")
	}
	if out.BuiltYear, err = numeric.Int(p.BuiltYear); err != nil {
		return nil, fmt.Errorf("built_year: %w", err)
	}
	if out.EscrowDays, err = numeric.Int(p.EscrowDays); err != nil {
		return nil, fmt.Errorf("escrow_days: %w", err)
	}
	if out.EscrowDays != nil && *out.EscrowDays < 0 {
		return nil, errors.New("escrow_days: must not be negative")
	}
	if p.Contingencies != nil {
		out.Contingencies = strutil.DedupeAndTrim(p.Contingencies)
	}

	conf, err := numeric.Float(p.Confidence)
	if err != nil {
		return nil, fmt.Errorf("confidence: %w", err)
	}
	if conf != nil {
		out.Confidence = math.Min(1, math.Max(0, *conf))
	}
	return out, nil
}
