package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML plan file from the given path.
func LoadFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a PlanFile.
func Parse(data []byte) (*PlanFile, error) {
	var pf PlanFile

	err := yaml.Unmarshal(data, &pf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan YAML: %w", err)
	}

	applyDefaults(&pf)

	return &pf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(pf *PlanFile) {
	if pf.Version == "" {
		pf.Version = "1"
	}
}

// Marshal serializes a PlanFile to YAML.
func Marshal(pf *PlanFile) ([]byte, error) {
	return yaml.Marshal(pf)
}

// WriteFile writes a PlanFile to the given path.
func WriteFile(pf *PlanFile, path string) error {
	data, err := Marshal(pf)
	if err != nil {
		return fmt.Errorf("failed to marshal plan: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write plan file %s: %w", path, err)
	}

	return nil
}
