package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestNewCreatesRunDir(t *testing.T) {
	dir := t.TempDir()
	store, err := New("run-123", dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.BaseDir != filepath.Join(dir, "runs", "run-123") {
		t.Errorf("unexpected base dir %q", store.BaseDir)
	}
	info, err := os.Stat(filepath.Join(store.BaseDir, "steps"))
	if err != nil {
		t.Fatalf("steps dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("expected steps to be a directory")
	}
}

func TestNewRequiresStateDir(t *testing.T) {
	if _, err := New("run-1", ""); err == nil {
		t.Fatal("expected error for empty state dir")
	}
}

func TestWriteStepOutput(t *testing.T) {
	store, _ := New("run-456", t.TempDir())

	outRef, errRef, err := store.WriteStepOutput("fetch-symbols", "out-data", "err-data")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stdout, _ := os.ReadFile(outRef)
	if string(stdout) != "out-data" {
		t.Errorf("expected stdout 'out-data', got %q", string(stdout))
	}
	stderr, _ := os.ReadFile(errRef)
	if string(stderr) != "err-data" {
		t.Errorf("expected stderr 'err-data', got %q", string(stderr))
	}
}

func TestWriteStepOutputSkipsEmptyStreams(t *testing.T) {
	store, _ := New("run-457", t.TempDir())

	outRef, errRef, err := store.WriteStepOutput("copy-awm", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if outRef != "" || errRef != "" {
		t.Errorf("expected no refs, got %q %q", outRef, errRef)
	}
	entries, _ := os.ReadDir(filepath.Join(store.BaseDir, "steps"))
	if len(entries) != 0 {
		t.Errorf("expected no files, got %d", len(entries))
	}
}

func TestWriteResult(t *testing.T) {
	store, _ := New("run-789", t.TempDir())

	result := map[string]string{"status": "ok"}
	if err := store.WriteResult(result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, _ := os.ReadFile(filepath.Join(store.BaseDir, "result.json"))
	var obj map[string]string
	json.Unmarshal(data, &obj)
	if obj["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", obj["status"])
	}
}
