package orchestrator

import "realeagent/internal/orchestrator/ports"

// Stage names a pipeline step.
type Stage string

const (
	StageIntent     Stage = "intent"
	StageExtraction Stage = "extraction"
	StageCompliance Stage = "compliance"
)

// State is a pipeline state. Transitions only move forward.
type State string

const (
	StateInit              State = "init"
	StateIntentPending     State = "intent_pending"
	StateExtractionPending State = "extraction_pending"
	StateExtractionSkipped State = "extraction_skipped"
	StateCompliancePending State = "compliance_pending"
	StateDone              State = "done"
	StateFailed            State = "failed"
)

// DefaultTransactionType is sent to compliance for every pipeline run.
const DefaultTransactionType = "purchase"

// Summary condenses the pipeline outcome.
type Summary struct {
	PropertyAddress   *string
	Price             *float64
	BuiltYear         *int
	RequiresLeadPaint bool
	RequiredForms     []ports.RequiredForm
	Recommendations   []ports.Recommendation
}

// PipelineResult is the response of one pipeline run.
type PipelineResult struct {
	Success    bool
	Query      string
	Intent     *ports.Intent
	Extraction *ports.Extraction
	Compliance *ports.Compliance
	Summary    Summary
	// Degraded lists stages that failed without failing the pipeline.
	Degraded []Stage
}
