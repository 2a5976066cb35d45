package table

import (
	"errors"
	"strings"

	"ingest/internal/util"
)

var (
	ErrEmptyTable        = errors.New("table has no data rows")
	ErrMissingColumns    = errors.New("required columns are missing")
	ErrTooFewColumns     = errors.New("too few columns after cleanup")
	ErrHeaderRowMissing  = errors.New("header row not present")
	ErrUnsupportedFormat = errors.New("unsupported input format")
	ErrUndecodable       = errors.New("input could not be decoded with any configured encoding")
	ErrSheetNotFound     = errors.New("worksheet not found")
)

// Table is a loaded sheet: Header is the first row, Rows the rest. Every row
// is padded to the same width.
type Table struct {
	Header []string
	Rows   [][]string
}

func newTable(grid [][]string) (*Table, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyTable
	}

	width := 0
	for _, row := range grid {
		if len(row) > width {
			width = len(row)
		}
	}

	padded := make([][]string, len(grid))
	for i, row := range grid {
		out := make([]string, width)
		for j, cell := range row {
			out[j] = util.NormalizeText(cell)
		}
		padded[i] = out
	}
	return &Table{Header: padded[0], Rows: padded[1:]}, nil
}

func (t *Table) Width() int {
	return len(t.Header)
}

// Title is the first cell of the first row, where course sheets keep their
// banner text.
func (t *Table) Title() string {
	if len(t.Header) == 0 {
		return ""
	}
	return t.Header[0]
}

// Records views the rows by header name. Missing columns are reported
// together so a user can fix the sheet in one pass.
func (t *Table) Records(required ...string) ([]Row, error) {
	index := make(map[string]int, len(t.Header))
	for i, h := range t.Header {
		key := headerKey(h)
		if _, seen := index[key]; !seen && key != "" {
			index[key] = i
		}
	}

	var missing []string
	for _, name := range required {
		if _, ok := index[headerKey(name)]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	rows := make([]Row, 0, len(t.Rows))
	for _, cells := range t.Rows {
		rows = append(rows, Row{index: index, cells: cells})
	}
	return rows, nil
}

type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return ErrMissingColumns.Error() + ": " + strings.Join(e.Columns, ", ")
}

func (e *MissingColumnsError) Unwrap() error {
	return ErrMissingColumns
}

type Row struct {
	index map[string]int
	cells []string
}

// Value returns the cell under column and whether it holds anything. An
// empty cell counts as absent.
func (r Row) Value(column string) (string, bool) {
	i, ok := r.index[headerKey(column)]
	if !ok || i >= len(r.cells) || r.cells[i] == "" {
		return "", false
	}
	return r.cells[i], true
}

func (r Row) Get(column string) string {
	v, _ := r.Value(column)
	return v
}

func headerKey(h string) string {
	return strings.ToLower(util.NormalizeSpaces(util.NormalizeText(h)))
}

func isBlankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
