package flow

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the importable shape: the flow's steps without storage fields.
type document struct {
	Steps []Step `json:"steps" yaml:"steps"`
}

// Document returns the importable flow definition.
func (f *Flow) Document() any {
	return document{Steps: f.Steps}
}

// YAML renders the importable definition as YAML.
func (f *Flow) YAML() ([]byte, error) {
	out, err := yaml.Marshal(f.Document())
	if err != nil {
		return nil, fmt.Errorf("encode flow yaml: %w", err)
	}
	return out, nil
}
