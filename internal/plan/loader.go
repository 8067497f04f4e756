package plan

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultManifest []byte

// Default returns the built-in manifest.
func Default() (*Plan, error) {
	return Load(defaultManifest)
}

// LoadFile reads and parses a manifest YAML file.
func LoadFile(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Load(data)
}

// Load parses manifest YAML bytes.
func Load(data []byte) (*Plan, error) {
	var p Plan
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if len(p.Steps) == 0 {
		return nil, fmt.Errorf("manifest has no steps")
	}
	if p.Name == "" {
		return nil, fmt.Errorf("manifest has no name")
	}
	return &p, nil
}

// ApplyDefaults fills inputs not provided by the caller with their defaults.
func (p *Plan) ApplyDefaults(inputs map[string]string) map[string]string {
	out := make(map[string]string, len(inputs)+len(p.Inputs))
	for k, v := range inputs {
		out[k] = v
	}
	for name, inp := range p.Inputs {
		if _, ok := out[name]; !ok && inp.Default != "" {
			out[name] = inp.Default
		}
	}
	return out
}
