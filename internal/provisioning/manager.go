package provisioning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"realeagent/pkg/platform/sentinel"
)

// Client is the provider's processor admin surface.
type Client interface {
	ListProcessors(ctx context.Context, parent string) ([]Processor, error)
	CreateProcessor(ctx context.Context, parent string, spec Spec) (Processor, error)
}

// Manager ensures processors exist under one project and location.
type Manager struct {
	client Client
	parent string
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the manager logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager builds a Manager for projects/{project}/locations/{location}.
func NewManager(client Client, project, location string, opts ...Option) *Manager {
	m := &Manager{
		client: client,
		parent: fmt.Sprintf("projects/%s/locations/%s", project, location),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Parent is the resource name processors are created under.
func (m *Manager) Parent() string {
	return m.parent
}

// Ensure returns the processor named spec.DisplayName, creating it if absent.
func (m *Manager) Ensure(ctx context.Context, spec Spec) (Result, error) {
	p, ok, err := m.find(ctx, spec)
	if err != nil {
		return Result{}, err
	}
	if ok {
		m.logger.InfoContext(ctx, "processor already exists", "display_name", spec.DisplayName, "name", p.Name)
		return toResult(spec, p, StatusExisting), nil
	}

	m.logger.InfoContext(ctx, "creating processor", "display_name", spec.DisplayName, "type", spec.Type)
	created, err := m.client.CreateProcessor(ctx, m.parent, spec)
	if err == nil {
		m.logger.InfoContext(ctx, "created processor", "display_name", spec.DisplayName, "name", created.Name)
		return toResult(spec, created, StatusCreated), nil
	}

	perr := classifyCreate(spec, err)
	if perr.Reason != ReasonAlreadyExists {
		return Result{}, perr
	}

	// Lost a race with a concurrent create; the processor should now list.
	m.logger.WarnContext(ctx, "processor created concurrently, re-listing", "display_name", spec.DisplayName)
	p, ok, err = m.find(ctx, spec)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{}, &ProvisionError{Reason: ReasonNotVisible, DisplayName: spec.DisplayName, Err: perr}
	}
	return toResult(spec, p, StatusExisting), nil
}

// EnsureAll provisions every spec. It continues past failures and returns the
// successful results alongside the joined errors.
func (m *Manager) EnsureAll(ctx context.Context, specs []Spec) ([]Result, error) {
	results := make([]Result, 0, len(specs))
	var errs []error
	for _, spec := range specs {
		res, err := m.Ensure(ctx, spec)
		if err != nil {
			m.logger.ErrorContext(ctx, "failed to provision processor", "display_name", spec.DisplayName, "error", err)
			errs = append(errs, err)
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(errs...)
}

func (m *Manager) find(ctx context.Context, spec Spec) (Processor, bool, error) {
	existing, err := m.client.ListProcessors(ctx, m.parent)
	if err != nil {
		return Processor{}, false, &ProvisionError{Reason: ReasonListFailed, DisplayName: spec.DisplayName, Err: err}
	}
	for _, p := range existing {
		if p.DisplayName == spec.DisplayName {
			return p, true, nil
		}
	}
	return Processor{}, false, nil
}

func classifyCreate(spec Spec, err error) *ProvisionError {
	reason := ReasonCreateFailed
	if errors.Is(err, sentinel.ErrConflict) {
		reason = ReasonAlreadyExists
	}
	return &ProvisionError{Reason: reason, DisplayName: spec.DisplayName, Err: err}
}

func toResult(spec Spec, p Processor, status Status) Result {
	return Result{Key: spec.Key, Name: p.Name, ID: p.ID(), Type: spec.Type, Status: status}
}
