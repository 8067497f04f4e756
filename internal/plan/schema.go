package plan

// Plan is the install manifest.
type Plan struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description,omitempty"`
	Inputs      map[string]Input `yaml:"inputs,omitempty"`
	Steps       []Step           `yaml:"steps"`
}

// Input defines a manifest-level input parameter.
type Input struct {
	Required    bool   `yaml:"required,omitempty"`
	Description string `yaml:"description,omitempty"`
	Default     string `yaml:"default,omitempty"`
}

// Step defines a single install step.
type Step struct {
	ID          string            `yaml:"id"`
	Description string            `yaml:"name,omitempty"` // shown as status text
	Action      string            `yaml:"action"`
	Params      map[string]string `yaml:"with,omitempty"`
	Args        []string          `yaml:"args,omitempty"`
	Required    bool              `yaml:"required,omitempty"` // counts toward the reboot decision
}

// Label is the text shown while the step runs.
func (s Step) Label() string {
	if s.Description != "" {
		return s.Description
	}
	return s.ID
}

// RequiredCount returns how many steps are marked required.
func (p *Plan) RequiredCount() int {
	n := 0
	for _, s := range p.Steps {
		if s.Required {
			n++
		}
	}
	return n
}
