package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"ingest/internal"
	"ingest/internal/catalog"
	"ingest/internal/table"
)

// ClassOutputColumns is the header the downstream importer looks up by name.
var ClassOutputColumns = []string{
	"Tên học phần", "Lớp", "Ngôn ngữ", "Chuyên ngành",
	"Lớp theo học", "Chủ đề phụ",
	"Giảng viên", "Thứ", "Tiết",
	"Khu vực", "Số phòng", "Tuần học", "Sỉ số",
}

func classRow(r internal.ClassRecord) []any {
	periods := r.Periods
	if periods == nil {
		periods = []int{}
	}
	return []any{
		r.CourseName, r.SectionNumber, string(r.Language), r.Major,
		r.ClassGroup, r.Subtopic,
		r.Instructor, r.Day, periods,
		r.Zone, r.RoomNumber, r.Weeks, r.ClassSize,
	}
}

func ExportClassRecords(records []internal.ClassRecord, outputPath string) error {
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, classRow(r))
	}
	return table.Write(outputPath, ClassOutputColumns, rows, table.WriteOptions{})
}

// ExportCourseTable writes the cleaned course sheet with a BOM so that Excel
// shows the Vietnamese headers correctly.
func ExportCourseTable(ct *table.CourseTable, outputPath string) error {
	rows := make([][]any, 0, len(ct.Rows))
	for _, cells := range ct.Rows {
		row := make([]any, len(cells))
		for i, c := range cells {
			row[i] = c
		}
		rows = append(rows, row)
	}
	return table.Write(outputPath, ct.Columns, rows, table.WriteOptions{BOM: true})
}

func ExportCatalog(c *catalog.Catalog, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.WriteJSON(f); err != nil {
		return fmt.Errorf("write catalog %s: %w", outputPath, err)
	}
	return f.Close()
}
