package adapters

import (
	"context"
	"time"

	extractionhandler "realeagent/internal/extraction/handler"
	"realeagent/internal/orchestrator/ports"
)

// ExtractionClient implements ports.ExtractionPort against the extractor.
type ExtractionClient struct {
	c *client
}

// NewExtractionClient targets the document extractor at baseURL.
func NewExtractionClient(baseURL string, timeout time.Duration, opts ...Option) *ExtractionClient {
	return &ExtractionClient{c: newClient("document-extractor", baseURL, timeout, opts...)}
}

type intentData struct {
	FormType        string   `json:"form_type"`
	PropertyAddress *string  `json:"property_address"`
	Price           *float64 `json:"price"`
	BuiltYear       *int     `json:"built_year"`
	EscrowDays      *int     `json:"escrow_days"`
	Contingencies   []string `json:"contingencies"`
}

type extractFromIntentRequest struct {
	IntentData intentData `json:"intent_data"`
}

// ExtractFromIntent posts the intent to /extract_from_intent.
func (a *ExtractionClient) ExtractFromIntent(ctx context.Context, in *ports.Intent) (*ports.Extraction, error) {
	req := extractFromIntentRequest{IntentData: intentData{
		FormType:        in.FormType,
		PropertyAddress: in.PropertyAddress,
		Price:           in.Price,
		BuiltYear:       in.BuiltYear,
		EscrowDays:      in.EscrowDays,
		Contingencies:   in.Contingencies,
	}}

	var resp extractionhandler.IntentExtractionResponse
	if err := a.c.postJSON(ctx, "/extract_from_intent", req, &resp); err != nil {
		return nil, err
	}
	return &ports.Extraction{
		Success:           resp.Success,
		FormType:          resp.FormType,
		ProcessorType:     resp.ProcessorType,
		PropertyAddress:   resp.ExtractedData.PropertyAddress,
		Price:             resp.ExtractedData.Price,
		BuiltYear:         resp.ExtractedData.BuiltYear,
		EscrowDays:        resp.ExtractedData.EscrowDays,
		Contingencies:     resp.ExtractedData.Contingencies,
		RequiresLeadPaint: resp.RequiresLeadPaint,
	}, nil
}
