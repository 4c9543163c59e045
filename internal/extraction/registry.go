package extraction

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProcessorRegistry maps document types to provider processor ids. It is
// immutable after construction.
type ProcessorRegistry struct {
	ids map[DocumentType]string
}

// NewProcessorRegistry copies ids, dropping blank values and unknown types.
func NewProcessorRegistry(ids map[DocumentType]string) *ProcessorRegistry {
	r := &ProcessorRegistry{ids: make(map[DocumentType]string, len(ids))}
	for t, id := range ids {
		if !slices.Contains(DocumentTypes, t) {
			continue
		}
		if id = strings.TrimSpace(id); id != "" {
			r.ids[t] = id
		}
	}
	return r
}

// Lookup returns the processor id for t.
func (r *ProcessorRegistry) Lookup(t DocumentType) (string, bool) {
	id, ok := r.ids[t]
	return id, ok
}

// IDs returns a copy of the configured mapping.
func (r *ProcessorRegistry) IDs() map[DocumentType]string {
	return maps.Clone(r.ids)
}

// Missing lists the known document types with no processor configured.
func (r *ProcessorRegistry) Missing() []string {
	missing := []string{}
	for _, t := range DocumentTypes {
		if _, ok := r.ids[t]; !ok {
			missing = append(missing, string(t))
		}
	}
	return missing
}

// ProcessorFile is the YAML document written by the provision tool:
//
//	processors:
//	  lead_paint: 9de800b942d80f79
//	  form_parser: 9de800b942d80ad1
type ProcessorFile struct {
	Processors map[DocumentType]string `yaml:"processors"`
}

// LoadProcessorFile reads a processor file. A missing path yields an empty
// mapping.
func LoadProcessorFile(path string) (map[DocumentType]string, error) {
	if path == "" {
		return map[DocumentType]string{}, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return map[DocumentType]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read processor file: %w", err)
	}

	var f ProcessorFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse processor file %s: %w", path, err)
	}
	if f.Processors == nil {
		return map[DocumentType]string{}, nil
	}
	return f.Processors, nil
}

// MergeProcessorIDs overlays environment overrides on file values.
func MergeProcessorIDs(file map[DocumentType]string, env map[string]string) map[DocumentType]string {
	merged := maps.Clone(file)
	if merged == nil {
		merged = map[DocumentType]string{}
	}
	for k, v := range env {
		merged[DocumentType(k)] = v
	}
	return merged
}
