package catalog

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"ingest/internal"
	"ingest/internal/fields"
	"ingest/internal/util"
)

// Builder appends course rows into one semester of a catalog. It is not safe
// for concurrent use.
type Builder struct {
	catalog  *Catalog
	semester *Cohorts
}

func NewBuilder(academicYear string, semester int) *Builder {
	c := New(academicYear)
	return &Builder{catalog: c, semester: c.Semester(SemesterKey(semester))}
}

// Add files row under every class its token field expands to. Rows without
// class tokens are skipped. It reports how many entries were added.
func (b *Builder) Add(row internal.CourseRow) int {
	raw := strings.TrimSpace(row.ClassTokens)
	if raw == "" || strings.EqualFold(raw, "nan") {
		return 0
	}

	entry := internal.CourseEntry{
		CourseName:       fields.CleanCourseName(strings.TrimSpace(row.CourseName)),
		TheoryCredits:    util.ParseCredit(row.TheoryCredits),
		PracticalCredits: util.ParseCredit(row.PracticalCredits),
		TotalCredits:     util.ParseCredit(row.TotalCredits),
		Subtopic:         row.Subtopic,
	}

	added := 0
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		cohort, classes := fields.CohortAndClasses(token)
		if len(classes) == 0 {
			continue
		}

		key := 0
		if cohort != nil {
			key = *cohort
		}
		bucket, ok := b.semester.Get(key)
		if !ok {
			bucket = orderedClasses()
			b.semester.Set(key, bucket)
		}
		for _, name := range classes {
			courses, _ := bucket.Get(name)
			bucket.Set(name, append(courses, entry))
			added++
		}
	}
	return added
}

func orderedClasses() *Classes {
	return orderedmap.New[string, []internal.CourseEntry]()
}

func (b *Builder) Catalog() *Catalog {
	return b.catalog
}

// Build aggregates rows into a fresh catalog.
func Build(academicYear string, semester int, rows []internal.CourseRow) *Catalog {
	b := NewBuilder(academicYear, semester)
	for _, row := range rows {
		b.Add(row)
	}
	return b.Catalog()
}
