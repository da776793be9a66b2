package trace

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadScript reads a scripted session from a YAML file
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Script{}, fmt.Errorf("parse script %s: %w", path, err)
	}
	if len(sc.Scroll) == 0 {
		return Script{}, fmt.Errorf("script %s has no scroll samples", path)
	}
	return sc, nil
}

// Load reads a recorded trace from a YAML file
func Load(path string) (*Trace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace: %w", err)
	}
	var tr Trace
	if err := yaml.Unmarshal(data, &tr); err != nil {
		return nil, fmt.Errorf("parse trace %s: %w", path, err)
	}
	return &tr, nil
}

// Save writes the trace to a YAML file
func (tr *Trace) Save(path string) error {
	data, err := yaml.Marshal(tr)
	if err != nil {
		return fmt.Errorf("encode trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write trace: %w", err)
	}
	return nil
}
