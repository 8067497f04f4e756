package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store manages the on-disk record of one install run.
type Store struct {
	RunID   string
	BaseDir string // <stateDir>/runs/<run_id>
}

// New creates a store for a given run ID, rooted at stateDir.
func New(runID, stateDir string) (*Store, error) {
	if stateDir == "" {
		return nil, fmt.Errorf("no state directory")
	}
	base := filepath.Join(stateDir, "runs", runID)
	if err := os.MkdirAll(filepath.Join(base, "steps"), 0o755); err != nil {
		return nil, fmt.Errorf("creating artifact dir: %w", err)
	}
	return &Store{RunID: runID, BaseDir: base}, nil
}

// WriteStepOutput writes captured tool output for a step and returns the
// paths written. Empty streams produce no file and an empty path.
func (s *Store) WriteStepOutput(stepID, stdout, stderr string) (stdoutRef, stderrRef string, err error) {
	if stdout != "" {
		stdoutRef = filepath.Join(s.BaseDir, "steps", stepID+".stdout")
		if err := os.WriteFile(stdoutRef, []byte(stdout), 0o644); err != nil {
			return "", "", err
		}
	}
	if stderr != "" {
		stderrRef = filepath.Join(s.BaseDir, "steps", stepID+".stderr")
		if err := os.WriteFile(stderrRef, []byte(stderr), 0o644); err != nil {
			return stdoutRef, "", err
		}
	}
	return stdoutRef, stderrRef, nil
}

// WriteResult writes the final result JSON.
func (s *Store) WriteResult(result any) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.BaseDir, "result.json"), data, 0o644)
}
