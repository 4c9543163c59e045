// Package gemini adapts the Google Gen AI SDK to intent.Generator.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"realeagent/internal/intent"
	"realeagent/internal/upstream"
)

const (
	providerName = "gemini"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-pro"

	temperature = float32(0.1)
)

// Config selects the backend. A non-empty Project uses Vertex AI; otherwise
// APIKey is required and the Gemini API is used.
type Config struct {
	Project  string
	Location string
	APIKey   string
	Model    string
	// BaseURL overrides the API endpoint.
	BaseURL string
}

// Generator calls GenerateContent with JSON output requested.
type Generator struct {
	client *genai.Client
	model  string
	info   intent.ModelInfo
}

// New creates a Generator.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	cc := &genai.ClientConfig{HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL}}
	info := intent.ModelInfo{Model: model}
	switch {
	case cfg.Project != "":
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.Project
		cc.Location = cfg.Location
		info.Project, info.Location, info.Backend = cfg.Project, cfg.Location, "vertex_ai"
	case cfg.APIKey != "":
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
		info.Backend = "gemini_api"
	default:
		return nil, errors.New("gemini: PROJECT_ID or GEMINI_API_KEY is required")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &Generator{client: client, model: model, info: info}, nil
}

// Info describes the configured model.
func (g *Generator) Info() intent.ModelInfo {
	return g.info
}

// Generate sends prompt as a single user turn and returns the response text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(temperature),
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", classify(err)
	}

	return resp.Text(), nil
}

func classify(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		ue := upstream.FromHTTPStatus(providerName, apiErr.Code, apiErr.Message)
		ue.Underlying = err
		return ue
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return upstream.New(upstream.Timeout, providerName, "model call did not complete", err)
	}
	return upstream.New(upstream.Outage, providerName, "model call failed", err)
}
