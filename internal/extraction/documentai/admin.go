package documentai

import (
	"context"

	documentai "google.golang.org/api/documentai/v1"

	"realeagent/internal/provisioning"
)

// Admin implements provisioning.Client.
type Admin struct {
	svc *documentai.Service
}

// NewAdmin wraps svc.
func NewAdmin(svc *documentai.Service) *Admin {
	return &Admin{svc: svc}
}

// ListProcessors returns every processor under parent, following pagination.
func (a *Admin) ListProcessors(ctx context.Context, parent string) ([]provisioning.Processor, error) {
	var out []provisioning.Processor
	err := a.svc.Projects.Locations.Processors.List(parent).Pages(ctx, func(resp *documentai.GoogleCloudDocumentaiV1ListProcessorsResponse) error {
		for _, p := range resp.Processors {
			if p != nil {
				out = append(out, fromAPI(p))
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err, "list processors")
	}
	return out, nil
}

// CreateProcessor creates a processor. A 409 surfaces as upstream.Conflict.
func (a *Admin) CreateProcessor(ctx context.Context, parent string, spec provisioning.Spec) (provisioning.Processor, error) {
	created, err := a.svc.Projects.Locations.Processors.Create(parent, &documentai.GoogleCloudDocumentaiV1Processor{
		DisplayName: spec.DisplayName,
		Type:        spec.Type,
	}).Context(ctx).Do()
	if err != nil {
		return provisioning.Processor{}, classify(err, "create processor "+spec.DisplayName)
	}
	return fromAPI(created), nil
}

func fromAPI(p *documentai.GoogleCloudDocumentaiV1Processor) provisioning.Processor {
	return provisioning.Processor{Name: p.Name, DisplayName: p.DisplayName, Type: p.Type}
}
