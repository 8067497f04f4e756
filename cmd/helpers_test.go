package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInputs(t *testing.T) {
	got := parseInputs([]string{"awm_dir=D:/awm", "symbol_server=http://a=b", "bogus"})
	assert.Equal(t, map[string]string{"awm_dir": "D:/awm", "symbol_server": "http://a=b"}, got)
}

func TestPreparePlanUsesBuiltInManifest(t *testing.T) {
	manifestPath, inputFlags = "", []string{"awm_dir=D:/awm"}
	t.Cleanup(func() { inputFlags = nil })

	p, inputs, err := preparePlan("")
	require.NoError(t, err)
	assert.Equal(t, "win10to8", p.Name)
	assert.Equal(t, "D:/awm", inputs["awm_dir"])
	assert.Equal(t, "https://msdl.microsoft.com/download/symbols", inputs["symbol_server"])
}

func TestPreparePlanRejectsInvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: bad\nsteps:\n  - id: a\n    action: http\n"), 0o644))

	_, _, err := preparePlan(path)
	assert.Error(t, err)
}
