package provisioning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"realeagent/internal/extraction"
)

// WriteProcessorFile writes results as the extractor's processor file.
func WriteProcessorFile(path string, results []Result) error {
	f := extraction.ProcessorFile{Processors: make(map[extraction.DocumentType]string, len(results))}
	for _, r := range results {
		f.Processors[r.Key] = r.ID
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode processor file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write processor file: %w", err)
	}
	return nil
}
