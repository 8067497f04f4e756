//go:build !windows

package paths

import (
	"path/filepath"
	"testing"
)

func TestResolveUsesBaseOverride(t *testing.T) {
	root := t.TempDir()
	t.Setenv("WIN10TO8_ROOT", root)
	base := t.TempDir()

	m, err := Resolve(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m[Base] != base {
		t.Errorf("expected base %q, got %q", base, m[Base])
	}
	if m[Windows] != filepath.Join(root, "Windows") {
		t.Errorf("unexpected windows dir %q", m[Windows])
	}
	if m[System32] != filepath.Join(root, "Windows", "System32") {
		t.Errorf("unexpected system32 dir %q", m[System32])
	}
	if m[SystemDrive] != root {
		t.Errorf("unexpected system drive %q", m[SystemDrive])
	}
}

func TestResolveDefaultsToExecutableDir(t *testing.T) {
	m, err := Resolve("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !filepath.IsAbs(m[Base]) {
		t.Errorf("expected absolute base dir, got %q", m[Base])
	}
}

func TestStateDirUnderProgramData(t *testing.T) {
	root := t.TempDir()
	t.Setenv("WIN10TO8_ROOT", root)
	if got := StateDir(); got != filepath.Join(root, "ProgramData", "win10to8") {
		t.Errorf("unexpected state dir %q", got)
	}
}
