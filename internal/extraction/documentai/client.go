// Package documentai adapts the Document AI v1 REST API to the extraction
// and provisioning ports.
package documentai

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2/google"
	documentai "google.golang.org/api/documentai/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"realeagent/internal/upstream"
)

const providerName = "documentai"

// Endpoint returns the regional REST endpoint for location.
func Endpoint(location string) string {
	return fmt.Sprintf("https://%s-documentai.googleapis.com/", location)
}

// NewService creates a Document AI service for location using application
// default credentials. Extra options are applied last.
func NewService(ctx context.Context, location string, opts ...option.ClientOption) (*documentai.Service, error) {
	ts, err := google.DefaultTokenSource(ctx, documentai.CloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("load default credentials: %w", err)
	}
	all := append([]option.ClientOption{
		option.WithEndpoint(Endpoint(location)),
		option.WithTokenSource(ts),
	}, opts...)

	svc, err := documentai.NewService(ctx, all...)
	if err != nil {
		return nil, fmt.Errorf("create documentai service: %w", err)
	}
	return svc, nil
}

// ParentName is the resource name processors live under.
func ParentName(project, location string) string {
	return fmt.Sprintf("projects/%s/locations/%s", project, location)
}

// classify maps REST failures onto upstream categories.
func classify(err error, message string) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		msg := message
		if gerr.Message != "" {
			msg = message + ": " + gerr.Message
		}
		ue := upstream.FromHTTPStatus(providerName, gerr.Code, msg)
		ue.Underlying = err
		return ue
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return upstream.New(upstream.Timeout, providerName, message, err)
	}
	if errors.Is(err, context.Canceled) {
		return upstream.New(upstream.Timeout, providerName, message+": cancelled", err)
	}
	return upstream.New(upstream.Outage, providerName, message, err)
}
