package plan

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMinimalPlan(t *testing.T) {
	yaml := []byte(`
name: minimal
steps:
  - id: s1
    action: registry.import
    with:
      file: a.reg
`)
	p, err := Load(yaml)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "minimal" {
		t.Errorf("expected name 'minimal', got %q", p.Name)
	}
	if len(p.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(p.Steps))
	}
	if p.Steps[0].Params["file"] != "a.reg" {
		t.Errorf("expected file 'a.reg', got %q", p.Steps[0].Params["file"])
	}
	if p.Steps[0].Label() != "s1" {
		t.Errorf("expected label to fall back to id, got %q", p.Steps[0].Label())
	}
}

func TestLoadFullFeaturedPlan(t *testing.T) {
	yaml := []byte(`
name: full
description: A full manifest
inputs:
  awm_dir:
    required: true
    description: target dir
    default: C:/awm
steps:
  - id: sib
    name: Installing StartIsBack++...
    action: installer.run
    required: true
    with:
      path: setup.exe
    args: ["/elevated", "/silent"]
`)
	p, err := Load(yaml)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Description != "A full manifest" {
		t.Errorf("expected description 'A full manifest', got %q", p.Description)
	}
	inp := p.Inputs["awm_dir"]
	if !inp.Required || inp.Default != "C:/awm" {
		t.Errorf("unexpected input %+v", inp)
	}
	s := p.Steps[0]
	if !s.Required {
		t.Error("expected step to be required")
	}
	if len(s.Args) != 2 || s.Args[0] != "/elevated" {
		t.Errorf("unexpected args %v", s.Args)
	}
	if s.Label() != "Installing StartIsBack++..." {
		t.Errorf("unexpected label %q", s.Label())
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	if _, err := Load([]byte(`:::not valid yaml[[[`)); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadRejectsEmptyPlan(t *testing.T) {
	if _, err := Load([]byte("name: empty\nsteps: []\n")); err == nil {
		t.Fatal("expected error for empty manifest")
	}
}

func TestLoadRejectsPlanWithNoName(t *testing.T) {
	if _, err := Load([]byte("steps:\n  - id: s1\n    action: task.import\n")); err == nil {
		t.Fatal("expected error for manifest with no name")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte("name: f\nsteps:\n  - id: a\n    action: task.import\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "f" {
		t.Errorf("expected name 'f', got %q", p.Name)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultManifest(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(p, p.ApplyDefaults(nil)); err != nil {
		t.Fatalf("default manifest invalid: %v", err)
	}
	if len(p.Steps) != 15 {
		t.Errorf("expected 15 steps, got %d", len(p.Steps))
	}
	if p.RequiredCount() != 2 {
		t.Errorf("expected 2 required steps, got %d", p.RequiredCount())
	}
	wantOrder := []string{"copy.tree", "copy.tree", "installer.run", "installer.run", "copy.tree", "symbols.fetch", "dll.register"}
	for i, action := range wantOrder {
		if p.Steps[i].Action != action {
			t.Errorf("step %d: expected %s, got %s", i, action, p.Steps[i].Action)
		}
	}
	for _, s := range p.Steps[7:10] {
		if s.Action != "task.import" {
			t.Errorf("step %s: expected task.import, got %s", s.ID, s.Action)
		}
	}
	for _, s := range p.Steps[10:] {
		if s.Action != "registry.import" {
			t.Errorf("step %s: expected registry.import, got %s", s.ID, s.Action)
		}
	}
}

func TestApplyDefaultsKeepsOverrides(t *testing.T) {
	p := &Plan{Inputs: map[string]Input{
		"a": {Default: "1"},
		"b": {Default: "2"},
	}}
	got := p.ApplyDefaults(map[string]string{"a": "override"})
	if got["a"] != "override" || got["b"] != "2" {
		t.Errorf("unexpected inputs %v", got)
	}
}
