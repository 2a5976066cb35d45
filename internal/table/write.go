package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type WriteOptions struct {
	// BOM prefixes CSV output with a UTF-8 byte order mark so that Excel
	// opens Vietnamese text correctly.
	BOM bool
}

// Write stores a header and rows at path, as an .xlsx workbook when the
// extension asks for one and as CSV otherwise. Parent directories are
// created.
func Write(path string, header []string, rows [][]any, opts WriteOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return writeXLSX(path, header, rows)
	}
	return writeCSV(path, header, rows, opts)
}

func writeCSV(path string, header []string, rows [][]any, opts WriteOptions) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	buf := bufio.NewWriter(file)
	if opts.BOM {
		if _, err := buf.WriteString(utf8BOM); err != nil {
			return err
		}
	}

	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i := range record {
			record[i] = ""
			if i < len(row) {
				record[i] = FormatCell(row[i])
			}
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write csv %s: %w", path, err)
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	return file.Close()
}

func writeXLSX(path string, header []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, h := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, row := range rows {
		r := i + 2
		for c, value := range row {
			value = xlsxValue(value)
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r)
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}

	return f.SaveAs(path)
}

// xlsxValue keeps numbers numeric in the workbook and flattens everything
// excelize cannot store directly.
func xlsxValue(v any) any {
	switch x := v.(type) {
	case *int:
		if x == nil {
			return nil
		}
		return *x
	case []int:
		return FormatCell(x)
	case string:
		if x == "" {
			return nil
		}
		return x
	default:
		return v
	}
}

// FormatCell renders a value the way the CSV consumer expects: nil as empty,
// integer lists as "[1, 2, 3]".
func FormatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case *int:
		if x == nil {
			return ""
		}
		return strconv.Itoa(*x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []int:
		parts := make([]string, len(x))
		for i, n := range x {
			parts[i] = strconv.Itoa(n)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprint(x)
	}
}
