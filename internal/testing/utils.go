// Package testing provides shared fixtures for tests across the repository.
package testing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/consortium-kit/horizon-scout/internal/clusters"
)

// SampleClusterContent holds two projects in one document, exercising code
// segmentation and keyword overlap in one fixture.
const SampleClusterContent = "HORIZON-CL4-2024-DIGITAL-01-01\n" +
	"Secure Data Exchange\n" +
	"Blockchain based data sharing with zero knowledge proofs.\n" +
	"HORIZON-CL4-2024-DIGITAL-01-02\n" +
	"Federated Sensing\n" +
	"Federated learning over iot sensors at the edge.\n"

// CreateClusterDir writes the given files into a fresh temp directory and
// returns a loaded Manager over it.
func CreateClusterDir(t *testing.T, files map[string]string) *clusters.Manager {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	manager := clusters.NewManager(dir)
	require.NoError(t, manager.Load())
	return manager
}

// WriteWorkbook saves a single-sheet .xlsx file with the given header and rows
// and returns its path.
func WriteWorkbook(t *testing.T, header []string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "workbook.xlsx")
	f := excelize.NewFile()

	cells := make([]interface{}, len(header))
	for i, h := range header {
		cells[i] = h
	}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &cells))

	for r, row := range rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &cells))
	}

	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}
