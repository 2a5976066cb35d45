package table

import (
	"fmt"
	"slices"
	"strings"

	"ingest/internal"
	"ingest/internal/util"
)

// Canonical course columns.
const (
	ColCourseName       = "course_name"
	ColTheoryCredits    = "theory_credits"
	ColPracticalCredits = "practical_credits"
	ColTotalCredits     = "total_credits"
	ColSubtopic         = "subtopic"
	ColClass            = "class"
)

// columnOrdinal is the administrative running-number column.
const columnOrdinal = "STT"

type Field struct {
	Name    string
	Aliases []string
}

// Schema is an ordered list of expected columns. Position in the slice is the
// positional fallback.
type Schema []Field

var CourseSchema = Schema{
	{Name: ColCourseName, Aliases: []string{"Tên học phần", "Học phần", "Tên HP"}},
	{Name: ColTheoryCredits, Aliases: []string{"LT", "Lý thuyết"}},
	{Name: ColPracticalCredits, Aliases: []string{"TH", "Thực hành"}},
	{Name: ColTotalCredits, Aliases: []string{"Tổng", "Tổng số tín chỉ", "Tổng TC", "Số TC"}},
	{Name: ColSubtopic, Aliases: []string{"Chủ đề phụ", "Ghi chú"}},
	{Name: ColClass, Aliases: []string{"Lớp", "Lớp học"}},
}

func (s Schema) Names() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = f.Name
	}
	return out
}

// CourseTable is the normalized course sheet. The schema's columns come
// first under canonical names, followed by the remaining source columns.
type CourseTable struct {
	Columns []string
	Rows    [][]string
	// ByName reports whether columns were matched by header text rather
	// than by position.
	ByName bool
}

// NormalizeCourseTable promotes t.Rows[headerRow] to the header, drops the
// rows above it and the ordinal column, then maps schema fields onto columns.
func NormalizeCourseTable(t *Table, headerRow int, schema Schema) (*CourseTable, error) {
	if headerRow < 0 || headerRow >= len(t.Rows) {
		return nil, fmt.Errorf("%w: row %d requested, sheet has %d rows below the title", ErrHeaderRowMissing, headerRow, len(t.Rows))
	}
	header := t.Rows[headerRow]
	data := t.Rows[headerRow+1:]

	kept := make([]int, 0, len(header))
	for i, h := range header {
		if strings.TrimSpace(h) == columnOrdinal {
			continue
		}
		kept = append(kept, i)
	}
	if len(kept) < len(schema) {
		return nil, fmt.Errorf("%w: need %d, found %d", ErrTooFewColumns, len(schema), len(kept))
	}

	mapping, byName := resolveByName(header, kept, schema)
	if !byName {
		mapping = kept[:len(schema)]
	}

	order := append([]int(nil), mapping...)
	columns := schema.Names()
	for _, i := range kept {
		if slices.Contains(mapping, i) {
			continue
		}
		order = append(order, i)
		columns = append(columns, strings.TrimSpace(header[i]))
	}

	rows := make([][]string, 0, len(data))
	for _, cells := range data {
		if isBlankRow(cells) {
			continue
		}
		out := make([]string, len(order))
		for j, src := range order {
			if src < len(cells) {
				out[j] = cells[src]
			}
		}
		rows = append(rows, out)
	}

	return &CourseTable{Columns: columns, Rows: rows, ByName: byName}, nil
}

// resolveByName succeeds only when every field finds its own column.
func resolveByName(header []string, kept []int, schema Schema) ([]int, bool) {
	mapping := make([]int, 0, len(schema))
	for _, field := range schema {
		found := -1
		for _, i := range kept {
			if slices.Contains(mapping, i) {
				continue
			}
			if matchesAlias(header[i], field.Aliases) {
				found = i
				break
			}
		}
		if found < 0 {
			return nil, false
		}
		mapping = append(mapping, found)
	}
	return mapping, true
}

func matchesAlias(h string, aliases []string) bool {
	key := headerKey(h)
	for _, a := range aliases {
		if key == headerKey(a) {
			return true
		}
	}
	return false
}

// CourseRows converts the schema columns into course rows.
func (c *CourseTable) CourseRows() []internal.CourseRow {
	out := make([]internal.CourseRow, 0, len(c.Rows))
	for _, cells := range c.Rows {
		row := internal.CourseRow{
			CourseName:       strings.TrimSpace(cells[0]),
			TheoryCredits:    cells[1],
			PracticalCredits: cells[2],
			TotalCredits:     cells[3],
			ClassTokens:      cells[5],
		}
		if s := strings.TrimSpace(cells[4]); s != "" {
			row.Subtopic = util.StringPtr(s)
		}
		out = append(out, row)
	}
	return out
}
