package catalog

import (
	"encoding/json"
	"fmt"
	"io"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"ingest/internal"
)

const semesterUnknown = "semester_unknown"

// Classes maps a class name to its courses in row order.
type Classes = orderedmap.OrderedMap[string, []internal.CourseEntry]

// Cohorts maps a cohort number (0 when unknown) to its classes.
type Cohorts = orderedmap.OrderedMap[int, *Classes]

// Catalog is the academic year -> semester -> cohort -> class -> courses
// document. Every level keeps keys in the order they were first seen.
type Catalog struct {
	AcademicYear string                                   `json:"academic_year"`
	Semesters    *orderedmap.OrderedMap[string, *Cohorts] `json:"semesters"`
}

func New(academicYear string) *Catalog {
	return &Catalog{
		AcademicYear: academicYear,
		Semesters:    orderedmap.New[string, *Cohorts](),
	}
}

// SemesterKey names a semester bucket: "semester_1", or "semester_unknown"
// for anything not positive.
func SemesterKey(n int) string {
	if n <= 0 {
		return semesterUnknown
	}
	return fmt.Sprintf("semester_%d", n)
}

// Semester returns the cohorts of key, creating the bucket if needed.
func (c *Catalog) Semester(key string) *Cohorts {
	if cohorts, ok := c.Semesters.Get(key); ok {
		return cohorts
	}
	cohorts := orderedmap.New[int, *Classes]()
	c.Semesters.Set(key, cohorts)
	return cohorts
}

// Courses looks up one class. It returns nil when any level is missing.
func (c *Catalog) Courses(semesterKey string, cohort int, class string) []internal.CourseEntry {
	cohorts, ok := c.Semesters.Get(semesterKey)
	if !ok {
		return nil
	}
	classes, ok := cohorts.Get(cohort)
	if !ok {
		return nil
	}
	courses, _ := classes.Get(class)
	return courses
}

// Count is the number of course entries across all classes.
func (c *Catalog) Count() int {
	n := 0
	for sem := c.Semesters.Oldest(); sem != nil; sem = sem.Next() {
		for cohort := sem.Value.Oldest(); cohort != nil; cohort = cohort.Next() {
			for class := cohort.Value.Oldest(); class != nil; class = class.Next() {
				n += len(class.Value)
			}
		}
	}
	return n
}

// WriteJSON encodes the catalog with four-space indentation. Course names
// keep '&', '<' and '>' as written.
func (c *Catalog) WriteJSON(w io.Writer) error {
	// The ordered maps marshal their values with json.Marshal, which always
	// escapes HTML, so the escapes are undone on the finished document.
	raw, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	out := append(unescapeHTML(raw), '\n')
	_, err = w.Write(out)
	return err
}

var htmlEscapes = map[string]byte{
	`\u0026`: '&',
	`\u003c`: '<',
	`\u003e`: '>',
}

// unescapeHTML rewrites the \u0026, \u003c and \u003e escapes of valid JSON
// back to their characters. Escape sequences are consumed pairwise so an
// escaped backslash followed by "u0026" is left alone.
func unescapeHTML(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if i+6 <= len(b) {
			if ch, ok := htmlEscapes[string(b[i:i+6])]; ok {
				out = append(out, ch)
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}
