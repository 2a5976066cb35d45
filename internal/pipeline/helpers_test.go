package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"ingest/internal/fields"
	"ingest/internal/table"
)

func testLoader() *table.Loader {
	return table.NewLoader([]string{"UTF-8", "windows-1258"}, nil)
}

func testParser() *fields.Parser {
	return fields.NewParser(fields.NewVocabulary(
		[]string{"SE", "AI"},
		[]string{"Chưa xếp phòng"},
	))
}

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "" && sheet != f.GetSheetName(0) {
		require.NoError(t, f.SetSheetName(f.GetSheetName(0), sheet))
	}
	name := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, f.SetCellValue(name, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func readCSV(t *testing.T, path string) (string, [][]string) {
	t.Helper()
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(text, "\ufeff"))).ReadAll()
	require.NoError(t, err)
	return text, records
}
