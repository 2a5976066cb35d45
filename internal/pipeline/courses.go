package pipeline

import (
	"log/slog"

	"ingest/internal/catalog"
	"ingest/internal/fields"
	"ingest/internal/table"
)

// CoursesPipeline turns a course catalogue workbook into a cleaned table and
// the nested per-class catalog.
type CoursesPipeline struct {
	loader    *table.Loader
	headerRow int
	schema    table.Schema
	log       *slog.Logger
}

func NewCoursesPipeline(loader *table.Loader, headerRow int, log *slog.Logger) *CoursesPipeline {
	if log == nil {
		log = slog.Default()
	}
	return &CoursesPipeline{loader: loader, headerRow: headerRow, schema: table.CourseSchema, log: log}
}

type CoursesOptions struct {
	Input      string
	Sheet      string
	CSVOutput  string
	JSONOutput string
}

type CoursesResult struct {
	AcademicYear string
	Semester     int
	Rows         int
	Entries      int
	CSVOutput    string
	JSONOutput   string
}

func (p *CoursesPipeline) Run(opts CoursesOptions) (CoursesResult, error) {
	t, err := p.loader.Load(opts.Input, opts.Sheet)
	if err != nil {
		return CoursesResult{}, err
	}

	academicYear, semester := fields.ExtractTitleMetadata(t.Title())

	ct, err := table.NormalizeCourseTable(t, p.headerRow, p.schema)
	if err != nil {
		return CoursesResult{}, err
	}
	p.log.Debug("course table normalized", "rows", len(ct.Rows), "columns", len(ct.Columns), "by_name", ct.ByName)

	if err := ExportCourseTable(ct, opts.CSVOutput); err != nil {
		return CoursesResult{}, err
	}

	c := catalog.Build(academicYear, semester, ct.CourseRows())
	if err := ExportCatalog(c, opts.JSONOutput); err != nil {
		return CoursesResult{}, err
	}

	return CoursesResult{
		AcademicYear: academicYear,
		Semester:     semester,
		Rows:         len(ct.Rows),
		Entries:      c.Count(),
		CSVOutput:    opts.CSVOutput,
		JSONOutput:   opts.JSONOutput,
	}, nil
}
