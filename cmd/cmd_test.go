package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wellquiz/internal/catalog"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		// Flag values persist on the package-level commands between runs.
		_ = rootCmd.PersistentFlags().Set("catalog", "")
		_ = catalogExportCmd.Flags().Set("format", "")
		_ = catalogExportCmd.Flags().Set("output", "")
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wellquiz")
}

func TestCatalogShow(t *testing.T) {
	out, err := execute(t, "catalog", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Interventions (7)")
	assert.Contains(t, out, "Prompts (20)")
}

func TestCatalogExportAndValidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	_, err := execute(t, "catalog", "export", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	c, err := catalog.Parse(data, catalog.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default(), c)

	out, err := execute(t, "catalog", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (20 prompts, 7 interventions)")
}

func TestCatalogValidateRejectsBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompts: []\ninterventions: []\n"), 0o644))

	_, err := execute(t, "catalog", "validate", path)
	assert.Error(t, err)
}

func TestCatalogExportRejectsUnknownFormat(t *testing.T) {
	_, err := execute(t, "catalog", "export", "--format", "toml")
	assert.ErrorContains(t, err, "invalid format")
}

func TestSimulate(t *testing.T) {
	out, err := execute(t, "simulate", "--runs", "10", "--seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Intervention")
	assert.Contains(t, out, "10 runs")
	assert.Contains(t, out, "exhausted=10")
}
