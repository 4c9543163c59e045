package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultUpstreamTimeout bounds each orchestrator call to a downstream service.
const DefaultUpstreamTimeout = 10 * time.Second

// Server captures HTTP server level configuration shared by every service.
type Server struct {
	Addr     string
	LogLevel string
}

// Intent configures the intent-processor service.
type Intent struct {
	Server
	ProjectID string
	Location  string
	Model     string
	// APIKey selects the Gemini API backend when no ProjectID is set.
	APIKey string
}

// Extractor configures the document-extractor service.
type Extractor struct {
	Server
	ProjectID string
	Location  string
	// ProcessorFile is an optional YAML file written by the provision tool.
	ProcessorFile string
	// ProcessorIDs holds per-document-type overrides from the environment.
	ProcessorIDs map[string]string
}

// Compliance configures the compliance-validator service.
type Compliance struct {
	Server
}

// Orchestrator configures the orchestrator service.
type Orchestrator struct {
	Server
	IntentURL       string
	ExtractorURL    string
	ComplianceURL   string
	UpstreamTimeout time.Duration
}

// ServerFromEnv reads PORT (Cloud Run convention) and LOG_LEVEL.
func ServerFromEnv() Server {
	port := getenv("PORT", "8080")
	return Server{
		Addr:     ":" + port,
		LogLevel: getenv("LOG_LEVEL", "info"),
	}
}

// IntentFromEnv builds the intent-processor config.
func IntentFromEnv() Intent {
	return Intent{
		Server:    ServerFromEnv(),
		ProjectID: os.Getenv("PROJECT_ID"),
		Location:  getenv("REGION", "us-central1"),
		Model:     getenv("GEMINI_MODEL", "gemini-2.5-pro"),
		APIKey:    os.Getenv("GEMINI_API_KEY"),
	}
}

// ExtractorFromEnv builds the document-extractor config. Document AI custom
// processors live in the "us" multi-region, not a compute region.
func ExtractorFromEnv() Extractor {
	ids := map[string]string{}
	for docType, env := range processorEnv {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			ids[docType] = v
		}
	}
	return Extractor{
		Server:        ServerFromEnv(),
		ProjectID:     os.Getenv("PROJECT_ID"),
		Location:      getenv("DOCUMENTAI_LOCATION", "us"),
		ProcessorFile: os.Getenv("PROCESSOR_CONFIG"),
		ProcessorIDs:  ids,
	}
}

var processorEnv = map[string]string{
	"lead_paint":  "PROCESSOR_ID_LEAD_PAINT",
	"ca_rpa":      "PROCESSOR_ID_CA_RPA",
	"bia":         "PROCESSOR_ID_BIA",
	"form_parser": "PROCESSOR_ID_FORM_PARSER",
}

// ComplianceFromEnv builds the compliance-validator config.
func ComplianceFromEnv() Compliance {
	return Compliance{Server: ServerFromEnv()}
}

// OrchestratorFromEnv builds the orchestrator config. UPSTREAM_TIMEOUT accepts
// a Go duration ("10s") or a whole number of seconds.
func OrchestratorFromEnv() (Orchestrator, error) {
	timeout, err := parseTimeout(os.Getenv("UPSTREAM_TIMEOUT"))
	if err != nil {
		return Orchestrator{}, err
	}
	return Orchestrator{
		Server:          ServerFromEnv(),
		IntentURL:       trimURL(getenv("INTENT_PROCESSOR_URL", "http://localhost:8081")),
		ExtractorURL:    trimURL(getenv("DOCUMENT_EXTRACTOR_URL", "http://localhost:8082")),
		ComplianceURL:   trimURL(getenv("COMPLIANCE_VALIDATOR_URL", "http://localhost:8083")),
		UpstreamTimeout: timeout,
	}, nil
}

func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultUpstreamTimeout, nil
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %q", raw)
		}
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse UPSTREAM_TIMEOUT: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("UPSTREAM_TIMEOUT must be positive, got %q", raw)
	}
	return d, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func trimURL(u string) string {
	return strings.TrimRight(u, "/")
}
