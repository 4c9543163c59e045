package adapters

import (
	"context"
	"time"

	intenthandler "realeagent/internal/intent/handler"
	"realeagent/internal/orchestrator/ports"
)

// IntentClient implements ports.IntentPort against the intent service.
type IntentClient struct {
	c *client
}

// NewIntentClient targets the intent service at baseURL.
func NewIntentClient(baseURL string, timeout time.Duration, opts ...Option) *IntentClient {
	return &IntentClient{c: newClient("intent-processor", baseURL, timeout, opts...)}
}

// ProcessQuery posts the query to /process.
func (a *IntentClient) ProcessQuery(ctx context.Context, query string) (*ports.Intent, error) {
	var resp intenthandler.IntentResponse
	if err := a.c.postJSON(ctx, "/process", intenthandler.ProcessRequest{UserInput: query}, &resp); err != nil {
		return nil, err
	}
	return &ports.Intent{
		FormType:        resp.FormType,
		PropertyAddress: resp.PropertyAddress,
		Price:           resp.Price,
		BuiltYear:       resp.BuiltYear,
		EscrowDays:      resp.EscrowDays,
		Contingencies:   resp.Contingencies,
		Confidence:      resp.Confidence,
	}, nil
}
