package pipeline

import (
	"ingest/internal"
	"ingest/internal/fields"
	"ingest/internal/table"
	"ingest/internal/util"
)

// Source columns of the class schedule sheet.
const (
	colClassName  = "Tên lớp học phần"
	colSchedule   = "Thời khóa biểu"
	colRoom       = "Phòng học"
	colClassSize  = "Sỉ số"
	colInstructor = "Giảng viên"
	colWeeks      = "Tuần học"
)

var classInputColumns = []string{colClassName, colSchedule, colRoom, colClassSize, colInstructor, colWeeks}

// NormalizeClassRow runs every field parser over one schedule row. Rows do not
// influence each other.
func NormalizeClassRow(p *fields.Parser, row table.Row) internal.ClassRecord {
	attrs := p.ParseClassName(row.Get(colClassName))
	refined := fields.RefineSubtopic(attrs.Subtopic)
	schedule := fields.ParseSchedule(row.Get(colSchedule))
	room := p.ParseRoom(row.Get(colRoom))

	return internal.ClassRecord{
		CourseName:    attrs.Name,
		SectionNumber: attrs.SectionNumber,
		Language:      attrs.Language,
		Major:         attrs.Major,
		ClassGroup:    refined.ClassGroup,
		Subtopic:      refined.Subtopic,
		Instructor:    row.Get(colInstructor),
		Day:           schedule.Day,
		Periods:       schedule.Periods,
		Zone:          room.Zone,
		RoomNumber:    room.RoomNumber,
		Weeks:         row.Get(colWeeks),
		ClassSize:     util.ParseOptionalInt(row.Get(colClassSize)),
	}
}
