package cmd

import (
	"strings"

	"github.com/stevehiehn/win10to8/internal/plan"
)

// parseInputs converts ["key=value", ...] to a map.
func parseInputs(raw []string) map[string]string {
	m := map[string]string{}
	for _, kv := range raw {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 {
			m[parts[0]] = parts[1]
		}
	}
	return m
}

// loadPlan reads the manifest named by path, --manifest, or the built-in
// one, in that order.
func loadPlan(path string) (*plan.Plan, error) {
	if path == "" {
		path = manifestPath
	}
	if path == "" {
		return plan.Default()
	}
	return plan.LoadFile(path)
}

// preparePlan loads and validates a manifest and applies input defaults.
func preparePlan(path string) (*plan.Plan, map[string]string, error) {
	p, err := loadPlan(path)
	if err != nil {
		return nil, nil, err
	}
	inputs := p.ApplyDefaults(parseInputs(inputFlags))
	if err := plan.Validate(p, inputs); err != nil {
		return nil, nil, err
	}
	return p, inputs, nil
}

func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
