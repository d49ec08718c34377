// Package testutil provides shared test helpers for creating config and catalog files.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a config file that exports into tmpDir and never touches the host clipboard.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()
	return writeConfig(t, tmpDir, "")
}

// SetupTestConfigWithCatalog also writes catalogContent to tmpDir and points catalog.file at it.
func SetupTestConfigWithCatalog(t *testing.T, tmpDir string, catalogContent string) string {
	t.Helper()

	catalogPath := filepath.Join(tmpDir, "catalog.yml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalogContent), 0644))
	return writeConfig(t, tmpDir, fmt.Sprintf("catalog:\n  file: %s\n", catalogPath))
}

func writeConfig(t *testing.T, tmpDir string, extra string) string {
	t.Helper()

	exportDir := filepath.Join(tmpDir, "export")
	require.NoError(t, os.MkdirAll(exportDir, 0755))

	configContent := fmt.Sprintf(`export:
  directory: %s
  orientation: P
  page_size: A4
clipboard:
  mode: manual
sessions:
  max_entries: 8
`, exportDir) + extra

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}
